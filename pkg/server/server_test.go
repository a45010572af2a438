package server

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/ngram"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const catCorpus = "the cat sat on the mat the cat ran"

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newCompleter(t *testing.T) *suggest.Completer {
	t.Helper()
	model, err := ngram.New(catCorpus, 3)
	if err != nil {
		t.Fatalf("ngram.New failed: %v", err)
	}
	return suggest.NewCompleter(model, 16)
}

// run feeds the encoded messages to a fresh server and returns a decoder
// over everything it wrote.
func run(t *testing.T, cfg *config.Config, configPath string, messages ...any) (*msgpack.Decoder, *Server) {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, m := range messages {
		if err := enc.Encode(m); err != nil {
			t.Fatalf("encoding %v: %v", m, err)
		}
	}

	srv := NewServerWithIO(newCompleter(t), cfg, configPath, &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}
	return msgpack.NewDecoder(&out), srv
}

func TestCompletionRequest(t *testing.T) {
	dec, _ := run(t, nil, "", CompletionRequest{ID: "req1", Prefix: "Ca", Limit: 5})

	var resp CompletionResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "req1" || resp.Count != 1 || len(resp.Suggestions) != 1 {
		t.Fatalf("response = %+v, want one suggestion for req1", resp)
	}
	got := resp.Suggestions[0]
	if got.Word != "Cat" || got.Rank != 1 || got.Score <= 0 {
		t.Errorf("suggestion = %+v, want Cat at rank 1 with a positive score", got)
	}
	if resp.TimeTaken < 0 {
		t.Errorf("time taken = %d", resp.TimeTaken)
	}
}

func TestCompletionRanksAndLimits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MinPrefix = 0
	cfg.Server.MaxLimit = 4

	dec, _ := run(t, cfg, "",
		CompletionRequest{ID: "all", Prefix: "", Limit: 50},
		CompletionRequest{ID: "default", Prefix: ""},
	)

	var clamped CompletionResponse
	if err := dec.Decode(&clamped); err != nil {
		t.Fatal(err)
	}
	if clamped.Count != 4 {
		t.Errorf("limit 50 with max_limit 4 returned %d suggestions", clamped.Count)
	}
	for i, sg := range clamped.Suggestions {
		if int(sg.Rank) != i+1 {
			t.Errorf("suggestion %d has rank %d", i, sg.Rank)
		}
		if i > 0 && clamped.Suggestions[i-1].Score < sg.Score {
			t.Errorf("scores not descending at %d", i)
		}
	}

	var defaulted CompletionResponse
	if err := dec.Decode(&defaulted); err != nil {
		t.Fatal(err)
	}
	if defaulted.Count != 4 {
		t.Errorf("missing limit returned %d suggestions, want top_k clamped to 4", defaulted.Count)
	}
}

func TestCompletionValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxPrefix = 5

	dec, _ := run(t, cfg, "",
		CompletionRequest{ID: "short", Prefix: ""},
		CompletionRequest{ID: "long", Prefix: "abcdefgh"},
		CompletionRequest{ID: "digits", Prefix: "c4t"},
		CompletionRequest{ID: "ok", Prefix: "th"},
	)

	for _, id := range []string{"short", "long"} {
		var errResp CompletionError
		if err := dec.Decode(&errResp); err != nil {
			t.Fatal(err)
		}
		if errResp.ID != id || errResp.Code != CodeBadRequest || errResp.Error == "" {
			t.Errorf("error reply = %+v, want a 400 for %s", errResp, id)
		}
	}

	var filtered CompletionResponse
	if err := dec.Decode(&filtered); err != nil {
		t.Fatal(err)
	}
	if filtered.ID != "digits" || filtered.Count != 0 {
		t.Errorf("filtered reply = %+v, want no suggestions", filtered)
	}

	var ok CompletionResponse
	if err := dec.Decode(&ok); err != nil {
		t.Fatal(err)
	}
	if ok.ID != "ok" || ok.Count != 1 || ok.Suggestions[0].Word != "the" {
		t.Errorf("reply = %+v, want the", ok)
	}
}

func TestInvalidMessagesKeepServing(t *testing.T) {
	dec, srv := run(t, nil, "",
		"just a string",
		map[string]any{"id": "bad", "p": 42},
		ActionRequest{ID: "x", Action: "launch"},
		CompletionRequest{ID: "after", Prefix: "ma"},
	)

	var notMap CompletionError
	if err := dec.Decode(&notMap); err != nil {
		t.Fatal(err)
	}
	if notMap.Code != CodeBadRequest {
		t.Errorf("non-map reply = %+v", notMap)
	}

	var badType CompletionError
	if err := dec.Decode(&badType); err != nil {
		t.Fatal(err)
	}
	if badType.ID != "bad" || badType.Code != CodeBadRequest {
		t.Errorf("wrong-type reply = %+v", badType)
	}

	var unknown CompletionError
	if err := dec.Decode(&unknown); err != nil {
		t.Fatal(err)
	}
	if unknown.ID != "x" || unknown.Code != CodeUnknownAction {
		t.Errorf("unknown action reply = %+v", unknown)
	}

	var after CompletionResponse
	if err := dec.Decode(&after); err != nil {
		t.Fatal(err)
	}
	if after.ID != "after" || after.Count != 1 || after.Suggestions[0].Word != "mat" {
		t.Errorf("reply after errors = %+v", after)
	}
	if srv.RequestCount() != 4 {
		t.Errorf("RequestCount() = %d, want 4", srv.RequestCount())
	}
}

func TestGetInfo(t *testing.T) {
	dec, _ := run(t, nil, "",
		CompletionRequest{ID: "warm", Prefix: "t"},
		ActionRequest{ID: "info", Action: "get_info"},
	)

	var skip CompletionResponse
	if err := dec.Decode(&skip); err != nil {
		t.Fatal(err)
	}
	var info InfoResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.ID != "info" || info.Status != "ok" {
		t.Fatalf("info = %+v", info)
	}
	if info.Order != 3 || info.Vocabulary != 6 || info.Tokens != 13 || info.StreamLen != 42 {
		t.Errorf("info = %+v, want order 3, 6 words, 13 tokens, 42 chars", info)
	}
	if info.CacheEntries != 1 || info.Requests != 2 {
		t.Errorf("info = %+v, want one cache entry after two requests", info)
	}
}

func TestSetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	limit, filter := 2, false

	dec, _ := run(t, cfg, path,
		ActionRequest{ID: "set", Action: "set_config", MaxLimit: &limit, EnableFilter: &filter},
		ActionRequest{ID: "get", Action: "get_config"},
		CompletionRequest{ID: "req", Prefix: "c4t", Limit: 10},
	)

	var set ConfigResponse
	if err := dec.Decode(&set); err != nil {
		t.Fatal(err)
	}
	if !set.Saved || set.MaxLimit != 2 || set.EnableFilter {
		t.Errorf("set_config reply = %+v", set)
	}

	var get ConfigResponse
	if err := dec.Decode(&get); err != nil {
		t.Fatal(err)
	}
	if get.Saved || get.MaxLimit != 2 || get.MinPrefix != cfg.Server.MinPrefix {
		t.Errorf("get_config reply = %+v", get)
	}

	// unfiltered, so the request reaches the model and finds nothing
	var resp CompletionResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "req" || resp.Count != 0 {
		t.Errorf("reply = %+v", resp)
	}

	saved, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if saved.Server.MaxLimit != 2 || saved.Server.EnableFilter {
		t.Errorf("saved server config = %+v", saved.Server)
	}
}

func TestMalformedStreamStops(t *testing.T) {
	in := bytes.NewBuffer([]byte{0xc1})
	var out bytes.Buffer

	srv := NewServerWithIO(newCompleter(t), nil, "", in, &out)
	if err := srv.Start(); err == nil {
		t.Fatal("Start on a corrupt stream returned nil")
	}

	var errResp CompletionError
	if err := msgpack.NewDecoder(&out).Decode(&errResp); err != nil {
		t.Fatalf("decoding error reply: %v", err)
	}
	if errResp.Code != CodeBadRequest {
		t.Errorf("error reply = %+v", errResp)
	}
}
