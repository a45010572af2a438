package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word predictions
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	configPath   string
	reader       io.Reader
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server speaking msgpack over stdin/stdout.
// configPath may be empty, set_config then changes the running server only.
func NewServer(completer suggest.ICompleter, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// replies to w.
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		completer:  completer,
		config:     cfg,
		configPath: configPath,
		reader:     r,
		writer:     writer,
		encoder:    msgpack.NewEncoder(writer),
		logger:     logger.New("server"),
	}
}

// Start processes requests until the input ends.
// A message that is not valid msgpack ends the loop with an error, since the
// stream cannot be resynchronized after it.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	decoder := msgpack.NewDecoder(bufio.NewReader(s.reader))

	for {
		var raw msgpack.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.sendError("", fmt.Sprintf("malformed message: %v", err), CodeBadRequest)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleMessage(raw)
	}
}

// RequestCount returns the number of messages handled so far.
func (s *Server) RequestCount() int {
	return s.requestCount
}

func (s *Server) handleMessage(raw msgpack.RawMessage) {
	s.requestCount++

	var env envelope
	if err := msgpack.Unmarshal(raw, &env); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "request must be a map", CodeBadRequest)
		return
	}

	if env.Action != "" {
		var req ActionRequest
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.sendError(env.ID, fmt.Sprintf("invalid action request: %v", err), CodeBadRequest)
			return
		}
		s.handleAction(req)
		return
	}

	var req CompletionRequest
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.sendError(env.ID, fmt.Sprintf("invalid completion request: %v", err), CodeBadRequest)
		return
	}
	s.handleCompletion(req)
}

// handleCompletion validates the request against the [server] config and
// sends the ranked suggestions.
func (s *Server) handleCompletion(req CompletionRequest) {
	start := time.Now()

	limit, filtered, err := CheckRequest(s.config, req.Prefix, req.Limit)
	if err != nil {
		s.sendError(req.ID, err.Error(), CodeBadRequest)
		return
	}

	var suggestions []suggest.Suggestion
	if filtered {
		s.logger.Debugf("Filtered prefix '%s'", req.Prefix)
	} else {
		suggestions = s.completer.Complete(req.Prefix, limit)
	}

	ranks := utils.CreateRankList(len(suggestions))
	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{
			Word:  sg.Word,
			Rank:  ranks[i],
			Score: sg.Score,
		}
	}

	elapsed := time.Since(start)
	s.logger.Debugf("Took [ %v ] for prefix '%s'", elapsed, req.Prefix)
	s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAction(req ActionRequest) {
	switch req.Action {
	case "get_info":
		stats := s.completer.Stats()
		s.send(InfoResponse{
			ID:           req.ID,
			Status:       "ok",
			Order:        stats["order"],
			Vocabulary:   stats["totalWords"],
			Tokens:       stats["tokens"],
			StreamLen:    stats["streamLen"],
			CacheEntries: stats["cacheEntries"],
			CacheHits:    stats["cacheHits"],
			Requests:     s.requestCount,
		})
	case "get_config":
		s.send(s.configResponse(req.ID, false))
	case "set_config":
		s.handleSetConfig(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeUnknownAction)
	}
}

func (s *Server) handleSetConfig(req ActionRequest) {
	if s.configPath == "" {
		server := &s.config.Server
		if req.MaxLimit != nil {
			server.MaxLimit = *req.MaxLimit
		}
		if req.MinPrefix != nil {
			server.MinPrefix = *req.MinPrefix
		}
		if req.MaxPrefix != nil {
			server.MaxPrefix = *req.MaxPrefix
		}
		if req.EnableFilter != nil {
			server.EnableFilter = *req.EnableFilter
		}
		s.config.Validate()
		s.send(s.configResponse(req.ID, false))
		return
	}

	if err := s.config.Update(s.configPath, req.MaxLimit, req.MinPrefix, req.MaxPrefix, req.EnableFilter); err != nil {
		s.logger.Errorf("Saving config to %s: %v", s.configPath, err)
		s.sendError(req.ID, fmt.Sprintf("failed to save config: %v", err), CodeInternal)
		return
	}
	s.send(s.configResponse(req.ID, true))
}

func (s *Server) configResponse(id string, saved bool) ConfigResponse {
	cfg := s.config.Server
	return ConfigResponse{
		ID:           id,
		Status:       "ok",
		MaxLimit:     cfg.MaxLimit,
		MinPrefix:    cfg.MinPrefix,
		MaxPrefix:    cfg.MaxPrefix,
		EnableFilter: cfg.EnableFilter,
		Saved:        saved,
	}
}

// send encodes one reply and flushes it so the client sees it immediately.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.logger.Debugf("Request %s failed: %s", id, message)
	s.send(CompletionError{ID: id, Error: message, Code: code})
}
