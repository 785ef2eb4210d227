package domain

import "time"

// DefaultDownloadStatus is applied when a create request omits the status.
const DefaultDownloadStatus = "completed"

// DownloadRecord is one finished (or in-flight) download. Records are
// listed newest-first.
type DownloadRecord struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      *string   `json:"size"`
	Status    string    `json:"status"`
	Timestamp Timestamp `json:"timestamp"`
}

func (d *DownloadRecord) Key() string          { return d.ID }
func (d *DownloadRecord) StampedAt() time.Time { return time.Time(d.Timestamp) }

// DownloadCreate is the payload accepted by the download create endpoint.
type DownloadCreate struct {
	Filename string  `json:"filename"`
	URL      string  `json:"url"`
	Size     *string `json:"size"`
	Status   string  `json:"status"`
}

// NewDownloadRecord validates in, applies defaults and assigns identity
// and event time.
func NewDownloadRecord(in DownloadCreate) (*DownloadRecord, error) {
	if in.Filename == "" {
		return nil, missingField("filename")
	}
	if in.URL == "" {
		return nil, missingField("url")
	}
	status := in.Status
	if status == "" {
		status = DefaultDownloadStatus
	}
	return &DownloadRecord{
		ID:        NewID(),
		Filename:  in.Filename,
		URL:       in.URL,
		Size:      in.Size,
		Status:    status,
		Timestamp: Timestamp(Now()),
	}, nil
}
