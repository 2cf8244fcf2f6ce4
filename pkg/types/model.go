package types

// ChartRequest is the body accepted by the wheel chart endpoints.
type ChartRequest struct {
	Data       []float64 `json:"data"`
	Categories []string  `json:"categories"`
	Title      string    `json:"title"`
}

// DiagramRequest is the body accepted by the ikigai endpoints.
type DiagramRequest struct {
	Labels  []string `json:"labels"`  // top, left, bottom, right
	Overlap []string `json:"overlap"` // top-left, bottom-left, bottom-right, top-right
	Title   string   `json:"title"`
}

type ChartURL struct {
	ChartURL string `json:"chart_url"`
}

type ErrorBody struct {
	Error string `json:"error"`
}
