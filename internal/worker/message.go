package worker

import (
	"errors"

	"github.com/ironsheep/pixelart-mcp/internal/dither"
)

// Request asks for one quantization run. ImageData is a flat RGBA buffer of
// Width*Height*4 bytes; in JSON it travels base64 encoded.
type Request struct {
	ImageData []byte          `json:"imageData"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Settings  dither.Settings `json:"settings"`
}

// Status tells a successful Response from a failed one.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Response is the single reply to a Request.
type Response struct {
	// Seq is the position of the request in arrival order, starting at 1.
	Seq uint64 `json:"seq"`

	Status Status `json:"status"`

	// ImageData holds the quantized buffer on success.
	ImageData []byte `json:"imageData,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`

	// Message describes the failure when Status is StatusError.
	Message string `json:"message,omitempty"`

	// Code classifies the failure when Status is StatusError.
	Code ErrorCode `json:"code,omitempty"`

	// Stale is set when a newer request had already been posted by the time
	// this response was delivered. Hosts usually drop stale responses.
	Stale bool `json:"stale,omitempty"`
}

// ErrorCode names the kind of failure in an error Response.
type ErrorCode string

const (
	CodeInvalidDimensions     ErrorCode = "invalid_dimensions"
	CodeUnknownMode           ErrorCode = "unknown_mode"
	CodeUnknownMetric         ErrorCode = "unknown_metric"
	CodeCustomPaletteTooLarge ErrorCode = "custom_palette_too_large"
	CodeClosed                ErrorCode = "closed"
	CodeInternal              ErrorCode = "internal"
)

var codeErrors = map[ErrorCode]error{
	CodeInvalidDimensions:     dither.ErrInvalidDimensions,
	CodeUnknownMode:           dither.ErrUnknownMode,
	CodeUnknownMetric:         dither.ErrUnknownMetric,
	CodeCustomPaletteTooLarge: dither.ErrCustomPaletteTooLarge,
	CodeClosed:                ErrClosed,
}

// codeOf classifies err by the sentinel it wraps.
func codeOf(err error) ErrorCode {
	for code, sentinel := range codeErrors {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return CodeInternal
}

// ResponseError is the error returned by Response.Err. It unwraps to the
// sentinel matching its Code, so errors.Is works on the host side.
type ResponseError struct {
	Code    ErrorCode
	Message string
}

func (e *ResponseError) Error() string {
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return codeErrors[e.Code]
}

// Err returns the failure carried by r, or nil on success.
func (r Response) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	msg := r.Message
	if msg == "" {
		msg = "conversion failed"
	}
	return &ResponseError{Code: r.Code, Message: msg}
}
