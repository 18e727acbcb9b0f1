package domain

// Graph is the client similarity graph: an undirected graph over clients
// where an edge's weight is the number of product identifiers two clients'
// order histories have in common.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Edge is undirected; Source is always the smaller client ID.
type Edge struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
	Weight int   `json:"weight"`
}

type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}
