package api

import "vincit.fi/raw-viewer/api/apitype"

type Topic string

const (
	ImagePreviewReady    = Topic("image-preview-ready")
	ImageFullReady       = Topic("image-full-ready")
	ImageLoadFailed      = Topic("image-load-failed")
	ProcessStatusUpdated = Topic("process-status-updated")
	ShowError            = Topic("show-error")
)

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}
