package server

type ContentTypeParams struct {
	ContentType string `uri:"type" json:"-"`
}

type ModifyStignoreParams struct {
	ContentTypeParams
	Actions *[]StignoreAction `json:"actions"`
}

type StignoreAction struct {
	Action     string `json:"action"`
	IgnoreType string `json:"ignore_type"`
	Name       string `json:"name"`
}

type FlushParams struct {
	ContentTypeParams
	Actions *[]FlushAction `json:"actions"`
}

// FlushAction fields are pointers so that missing fields can be told apart from
// zero values.
type FlushAction struct {
	Name          *string  `json:"name"`
	Path          *string  `json:"path"`
	Action        *string  `json:"action"`
	SizeMegabytes *float64 `json:"size_megabytes"`
}
