package api

import (
	"vincit.fi/raw-viewer/api/apitype"
)

type ErrorCommand struct {
	Message string

	apitype.Command
}

type ImageReadyCommand struct {
	ImageId apitype.ImageId
	Kind    apitype.ResultKind

	apitype.Command
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int

	apitype.Command
}
