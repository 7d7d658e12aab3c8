package model

// ExternalFunctionRequest is the event redshift sends for every batch of rows
// that reaches a lambda external function.
type ExternalFunctionRequest struct {
	User             string `json:"user,omitempty"`
	Cluster          string `json:"cluster,omitempty"`
	Database         string `json:"database,omitempty"`
	ExternalFunction string `json:"external_function,omitempty"`
	QueryID          int64  `json:"query_id,omitempty"`
	RequestID        string `json:"request_id,omitempty"`
	// one slice per row, in row order
	Arguments  [][]any `json:"arguments"`
	NumRecords *int    `json:"num_records,omitempty"`
}

func (r *ExternalFunctionRequest) GetNumRecords() int {
	if r.NumRecords != nil {
		return *r.NumRecords
	}
	return len(r.Arguments)
}

// ExternalFunctionResponse holds one json encoded result object per row.
type ExternalFunctionResponse struct {
	Results []string `json:"results"`
}

// ArgumentSet is a single row of an external function call:
// invoke_bedrock(model_id, prompt, model_params, tool_config)
type ArgumentSet struct {
	ModelID     string         `validate:"required"`
	Prompt      string         `validate:"required"`
	ModelParams map[string]any `validate:"-"`
	ToolConfig  map[string]any `validate:"-"`
}
