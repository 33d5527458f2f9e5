package authgate

import (
	"encoding/json"
	"net/http"
)

// serializationFailedBody is the fixed fallback for encoding failures;
// the underlying error text never reaches the caller.
const serializationFailedBody = `{"error":"Serialization failed"}`

// Response is the transport-agnostic envelope every dispatch produces.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key",
		"Access-Control-Allow-Methods": "OPTIONS,POST,GET",
	}
}

func buildResponse(statusCode int, body map[string]any) Response {
	payload, err := json.Marshal(body)
	if err != nil {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       serializationFailedBody,
		}
	}

	return Response{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(payload),
	}
}

func preflightResponse() Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       "",
	}
}
