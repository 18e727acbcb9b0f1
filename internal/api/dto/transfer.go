package dto

// TransferRequest names the file a bulk export writes or an import reads
type TransferRequest struct {
	Path string `json:"path" binding:"required"`
}

// ImportResponse reports what an import did
type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ExportResponse confirms where an export landed
type ExportResponse struct {
	Path string `json:"path"`
}
