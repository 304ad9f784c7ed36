package server

import (
	"encoding/json"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/store"
	"github.com/katalvlaran/lvlgen/verify"
)

// MessageType defines the type of message being sent.
type MessageType string

const (
	MessageTypeGenerate MessageType = "generate"
	MessageTypeLoad     MessageType = "load"
	MessageTypeList     MessageType = "list"
	MessageTypeCheck    MessageType = "check"
	MessageTypeLevel    MessageType = "level"
	MessageTypeLevels   MessageType = "levels"
	MessageTypeReport   MessageType = "report"
	MessageTypeError    MessageType = "error"
)

// Error codes carried by ErrorMessage.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnknownType      = "UNKNOWN_MESSAGE_TYPE"
	CodeUnknownRecipe    = "UNKNOWN_RECIPE"
	CodeNotFound         = "NOT_FOUND"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeStorage          = "STORAGE_ERROR"
)

// BaseMessage is the envelope for all outgoing messages.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// inbound is the envelope for incoming messages; the payload is decoded
// once the type is known.
type inbound struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GenerateMessage requests a new level.
type GenerateMessage struct {
	Recipe string `json:"recipe"`
	SeedA  uint64 `json:"seed_a"`
	SeedB  uint64 `json:"seed_b"`
	// Name, when set, stores the level under that name.
	Name string `json:"name,omitempty"`
}

// LoadMessage requests a stored level.
type LoadMessage struct {
	Name string `json:"name"`
}

// CheckMessage asks for a report on a client-supplied level.
type CheckMessage struct {
	// Tiles is the .lvl encoding, base64 in JSON.
	Tiles []byte `json:"tiles"`
}

// LevelMessage carries one level.
type LevelMessage struct {
	Name        string `json:"name,omitempty"`
	Recipe      string `json:"recipe"`
	SeedA       uint64 `json:"seed_a"`
	SeedB       uint64 `json:"seed_b"`
	Completable bool   `json:"completable"`
	Tiles       []byte `json:"tiles"`
	Dump        string `json:"dump"`
}

// LevelsMessage lists stored levels.
type LevelsMessage struct {
	Items []store.Meta `json:"items"`
}

// ReportMessage answers a check request.
type ReportMessage struct {
	verify.Report
	// Valid is empty when Level.Validate passes, else its error text.
	Valid string `json:"valid,omitempty"`
}

// ErrorMessage represents an error response.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func levelMessage(m store.Meta, l *level.Level) LevelMessage {
	tiles, _ := l.MarshalBinary()
	return LevelMessage{
		Name:        m.Name,
		Recipe:      m.Recipe,
		SeedA:       m.SeedA,
		SeedB:       m.SeedB,
		Completable: m.Completable,
		Tiles:       tiles,
		Dump:        l.String(),
	}
}
