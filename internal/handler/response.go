package handler

// Response is the envelope returned to the invoking runtime. Ingestion
// callers only ever observe this 200/500 pair; provisioning callers watch
// the out-of-band callback instead.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func successResponse() Response {
	return Response{StatusCode: 200, Body: "Success"}
}

func errorResponse() Response {
	return Response{StatusCode: 500, Body: "Lambda error"}
}
