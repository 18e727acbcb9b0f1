package service

import (
	"sort"
	"time"

	"github.com/okulikov/orderdesk/internal/core/domain"
)

// ClientOrderCount is one row of the top-clients report.
type ClientOrderCount struct {
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name"`
	Orders     int    `json:"orders"`
}

// DatePoint is one point of the orders-by-date series.
type DatePoint struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Orders int    `json:"orders"`
}

// ReportService turns a materialized order list into tabular report data.
// All methods are pure: rendering is the caller's problem.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// TopClients groups orders by client, counts distinct order IDs per client
// and returns the first n rows sorted by descending count. Ties break on
// ascending client ID so the result is deterministic.
func (s *ReportService) TopClients(orders []*domain.Order, n int) []ClientOrderCount {
	type group struct {
		name   string
		orders map[int64]bool
	}
	groups := make(map[int64]*group)
	for _, o := range orders {
		if o.Client == nil {
			continue
		}
		g, ok := groups[o.Client.ID]
		if !ok {
			g = &group{name: o.Client.Name, orders: make(map[int64]bool)}
			groups[o.Client.ID] = g
		}
		g.orders[o.ID] = true
	}

	counts := make([]ClientOrderCount, 0, len(groups))
	for id, g := range groups {
		counts = append(counts, ClientOrderCount{
			ClientID:   id,
			ClientName: g.name,
			Orders:     len(g.orders),
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Orders != counts[j].Orders {
			return counts[i].Orders > counts[j].Orders
		}
		return counts[i].ClientID < counts[j].ClientID
	})

	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// OrdersByDate counts distinct order IDs per calendar date (time of day
// discarded) and returns one point per distinct date, ascending. Dates with
// no orders are absent, not zero-filled.
func (s *ReportService) OrdersByDate(orders []*domain.Order) []DatePoint {
	perDate := make(map[string]map[int64]bool)
	for _, o := range orders {
		day := o.Date.Format(time.DateOnly)
		if perDate[day] == nil {
			perDate[day] = make(map[int64]bool)
		}
		perDate[day][o.ID] = true
	}

	points := make([]DatePoint, 0, len(perDate))
	for day, ids := range perDate {
		points = append(points, DatePoint{Date: day, Orders: len(ids)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// BuildClientGraph builds the client similarity graph. Every client in
// clients becomes a node, including clients with no orders, which stay
// isolated. For each unordered pair of clients whose order histories share
// at least one product ID an edge is added, weighted by the size of the
// intersection. Pair enumeration is quadratic in client count; fine for a
// single shop's records.
func (s *ReportService) BuildClientGraph(clients []*domain.Client, orders []*domain.Order) *domain.Graph {
	graph := &domain.Graph{
		Nodes: []domain.Node{},
		Edges: []domain.Edge{},
	}

	productsOf := make(map[int64]map[int64]bool)
	for _, o := range orders {
		if o.Client == nil {
			continue
		}
		set := productsOf[o.Client.ID]
		if set == nil {
			set = make(map[int64]bool)
			productsOf[o.Client.ID] = set
		}
		for _, p := range o.Products {
			set[p.ID] = true
		}
	}

	ids := make([]int64, 0, len(clients))
	for _, c := range clients {
		graph.Nodes = append(graph.Nodes, domain.Node{ID: c.ID, Name: c.Name})
		ids = append(ids, c.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			weight := intersectionSize(productsOf[ids[i]], productsOf[ids[j]])
			if weight == 0 {
				continue
			}
			graph.Edges = append(graph.Edges, domain.Edge{
				Source: ids[i],
				Target: ids[j],
				Weight: weight,
			})
		}
	}

	graph.Stats = &domain.Stats{
		TotalNodes: len(graph.Nodes),
		TotalEdges: len(graph.Edges),
	}
	return graph
}

func intersectionSize(a, b map[int64]bool) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if b[id] {
			n++
		}
	}
	return n
}
