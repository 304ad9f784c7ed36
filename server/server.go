package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/recipe"
	"github.com/katalvlaran/lvlgen/store"
	"github.com/katalvlaran/lvlgen/verify"
)

// Server answers generation requests and serves stored levels.
type Server struct {
	storage  store.Storage
	upgrader websocket.Upgrader
	opts     []recipe.Option
	timeout  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithRecipeOptions passes options to every recipe.Generate call.
func WithRecipeOptions(opts ...recipe.Option) Option {
	return func(s *Server) { s.opts = append(s.opts, opts...) }
}

// WithTimeout bounds each request's generation and storage work.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates a Server backed by storage.
func New(storage store.Storage, opts ...Option) *Server {
	s := &Server{
		storage: storage,
		upgrader: websocket.Upgrader{
			// Levels are public data; any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.ServeWS)
	mux.HandleFunc("GET /levels/{name}", s.serveLevel)
	return mux
}

// ServeWS upgrades the request and runs the connection until it closes.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("New connection from %s", ws.RemoteAddr())
	conn := NewConnection(ws)
	go conn.WritePump()
	conn.ReadPump(s)
	log.Printf("Connection from %s closed", ws.RemoteAddr())
}

func (s *Server) serveLevel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	name := r.PathValue("name")
	rec, err := s.storage.Load(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to load level %q: %v", name, err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".lvl"))
	if err := level.Write(w, rec.Level); err != nil {
		log.Printf("Failed to write level %q: %v", name, err)
	}
}

// HandleMessage dispatches one websocket request.
func (s *Server) HandleMessage(conn *Connection, message []byte) {
	var msg inbound
	if err := json.Unmarshal(message, &msg); err != nil {
		s.reply(conn, MessageTypeError, ErrorMessage{Code: CodeBadRequest, Message: "malformed envelope"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var (
		typ     MessageType
		payload interface{}
		err     error
	)
	switch msg.Type {
	case MessageTypeGenerate:
		typ, payload, err = s.handleGenerate(ctx, msg.Payload)
	case MessageTypeLoad:
		typ, payload, err = s.handleLoad(ctx, msg.Payload)
	case MessageTypeList:
		typ, payload, err = s.handleList(ctx)
	case MessageTypeCheck:
		typ, payload, err = s.handleCheck(msg.Payload)
	default:
		log.Printf("Unknown message type: %s", msg.Type)
		s.reply(conn, MessageTypeError, ErrorMessage{
			Code:    CodeUnknownType,
			Message: fmt.Sprintf("unknown message type %q", msg.Type),
		})
		return
	}
	if err != nil {
		s.reply(conn, MessageTypeError, errorMessage(err))
		return
	}
	s.reply(conn, typ, payload)
}

func (s *Server) reply(conn *Connection, typ MessageType, payload interface{}) {
	if err := conn.SendMessage(BaseMessage{Type: typ, Payload: payload}); err != nil {
		log.Printf("Error sending %s: %v", typ, err)
	}
}

// requestError marks client mistakes in a payload.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func decode(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &requestError{msg: "malformed payload: " + err.Error()}
	}
	return nil
}

func errorMessage(err error) ErrorMessage {
	var re *requestError
	code := CodeGenerationFailed
	switch {
	case errors.As(err, &re):
		code = CodeBadRequest
	case errors.Is(err, recipe.ErrUnknownRecipe):
		code = CodeUnknownRecipe
	case errors.Is(err, store.ErrNotFound):
		code = CodeNotFound
	case errors.Is(err, store.ErrInvalidRecord), errors.Is(err, level.ErrShortRead):
		code = CodeBadRequest
	case errors.Is(err, errStorage):
		code = CodeStorage
	}
	return ErrorMessage{Code: code, Message: err.Error()}
}

var errStorage = errors.New("storage failure")

func (s *Server) handleGenerate(ctx context.Context, raw json.RawMessage) (MessageType, interface{}, error) {
	var req GenerateMessage
	if err := decode(raw, &req); err != nil {
		return "", nil, err
	}
	if req.Recipe == "" {
		req.Recipe = "classic"
	}
	rec, err := recipe.Lookup(req.Recipe)
	if err != nil {
		return "", nil, err
	}
	res, err := recipe.Generate(ctx, rec, recipe.Seed{A: req.SeedA, B: req.SeedB}, s.opts...)
	if err != nil {
		log.Printf("Generation failed for %s (%d,%d): %v", req.Recipe, req.SeedA, req.SeedB, err)
		return "", nil, err
	}
	meta := store.Meta{
		Name:        req.Name,
		Recipe:      res.Recipe,
		SeedA:       res.Seed.A,
		SeedB:       res.Seed.B,
		Completable: res.Completable,
	}
	if req.Name != "" {
		if err := s.storage.Save(ctx, &store.Record{Meta: meta, Level: res.Level}); err != nil {
			log.Printf("Failed to save level %q: %v", req.Name, err)
			return "", nil, fmt.Errorf("%w: %w", errStorage, err)
		}
	}
	return MessageTypeLevel, levelMessage(meta, res.Level), nil
}

func (s *Server) handleLoad(ctx context.Context, raw json.RawMessage) (MessageType, interface{}, error) {
	var req LoadMessage
	if err := decode(raw, &req); err != nil {
		return "", nil, err
	}
	rec, err := s.storage.Load(ctx, req.Name)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			err = fmt.Errorf("%w: %w", errStorage, err)
		}
		return "", nil, err
	}
	return MessageTypeLevel, levelMessage(rec.Meta, rec.Level), nil
}

func (s *Server) handleList(ctx context.Context) (MessageType, interface{}, error) {
	items, err := s.storage.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errStorage, err)
	}
	if items == nil {
		items = []store.Meta{}
	}
	return MessageTypeLevels, LevelsMessage{Items: items}, nil
}

func (s *Server) handleCheck(raw json.RawMessage) (MessageType, interface{}, error) {
	var req CheckMessage
	if err := decode(raw, &req); err != nil {
		return "", nil, err
	}
	l := level.New()
	if err := l.UnmarshalBinary(req.Tiles); err != nil {
		return "", nil, err
	}
	out := ReportMessage{Report: verify.Inspect(l)}
	if err := l.Validate(); err != nil {
		out.Valid = err.Error()
	}
	return MessageTypeReport, out, nil
}
