package dto

type SyncResponse struct {
	Watermark int64 `json:"watermark"`
}
