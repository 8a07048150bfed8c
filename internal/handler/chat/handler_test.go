package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kitround/director/internal/model/persona"
	"github.com/kitround/director/internal/service/director"
)

type stubRunner struct {
	calls  int
	input  string
	result director.Result
	err    error
}

func (s *stubRunner) Run(_ context.Context, input string) (director.Result, error) {
	s.calls++
	s.input = input
	return s.result, s.err
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func setupRouter(runner director.Runner) *chi.Mux {
	store := persona.NewMemoryStore(persona.Seed())
	handler := New(runner, store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", resp.Body.String(), err)
	}
	return body
}

func TestChatForwardsTaggedMessage(t *testing.T) {
	runner := &stubRunner{result: director.Result{FinalOutput: "Here is a plan..."}}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"Plan a campaign","mode":"spark"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if runner.input != "[SPARK] Plan a campaign" {
		t.Fatalf("forwarded input = %q", runner.input)
	}

	body := decodeBody(t, resp)
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if body["text"] != "Here is a plan..." {
		t.Fatalf("text = %v", body["text"])
	}
}

func TestChatUnknownModePassthrough(t *testing.T) {
	runner := &stubRunner{result: director.Result{FinalOutput: "ok"}}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"Plan a campaign","mode":"banana"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if runner.input != "Plan a campaign" {
		t.Fatalf("forwarded input = %q, want message unchanged", runner.input)
	}
}

func TestChatNonStringModeIgnored(t *testing.T) {
	runner := &stubRunner{result: director.Result{FinalOutput: "ok"}}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"Plan a campaign","mode":7}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if runner.input != "Plan a campaign" {
		t.Fatalf("forwarded input = %q, want message unchanged", runner.input)
	}
}

func TestChatObjectShapedResult(t *testing.T) {
	runner := &stubRunner{result: director.Result{FinalOutput: director.TextOutput{Text: "hi"}}}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"hello"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["text"] != "hi" {
		t.Fatalf("text = %v", body["text"])
	}
}

func TestChatRejectsInvalidMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"blank message", `{"message":"   "}`},
		{"non-string message", `{"message":5}`},
		{"malformed json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &stubRunner{}
			r := setupRouter(runner)

			resp := postChat(t, r, tc.body)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if body := decodeBody(t, resp); body["error"] != ErrMissingMessage {
				t.Fatalf("error = %v", body["error"])
			}
			if runner.calls != 0 {
				t.Fatalf("runner invoked %d times, want 0", runner.calls)
			}
		})
	}
}

func TestChatUpstreamError(t *testing.T) {
	runner := &stubRunner{err: context.DeadlineExceeded}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"hello"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != context.DeadlineExceeded.Error() {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestChatUpstreamErrorWithoutMessage(t *testing.T) {
	runner := &stubRunner{err: emptyError{}}
	r := setupRouter(runner)

	resp := postChat(t, r, `{"message":"hello"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Server error" {
		t.Fatalf("error = %v", body["error"])
	}
}
