package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry payload.
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ListData wraps a list payload.
type ListData struct {
	List interface{} `json:"list"`
}

// ResponseCurrentTime returns the current time in milliseconds, as used
// in every response envelope.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewEntryResponse builds a successful envelope around a single entry.
func NewEntryResponse(entry interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        EntryData{Entry: entry},
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse builds a successful envelope around a list.
func NewListResponse(list interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        ListData{List: list},
		Text:        "OK",
		Version:     2,
	}
}
