package bridge

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cm64io/mcp/client"
	"github.com/cm64io/mcp/client/auth"
)

// call is a request observed by fakeRemote
type call struct {
	Method    string
	ID        string
	SessionID string
	Auth      string
	Params    json.RawMessage
}

// fakeRemote emulates a session based MCP endpoint
type fakeRemote struct {
	mux           sync.Mutex
	sessions      []string
	issued        int
	valid         map[string]bool
	calls         []call
	deletes       []string
	initStatus    int
	initError     string
	initDelay     time.Duration
	alwaysMissing bool
	server        *httptest.Server
}

func newFakeRemote(t *testing.T, sessions ...string) *fakeRemote {
	ret := &fakeRemote{sessions: sessions, valid: map[string]bool{}}
	ret.server = httptest.NewServer(http.HandlerFunc(ret.serve))
	t.Cleanup(ret.server.Close)
	return ret
}

func (f *fakeRemote) client() *client.Client {
	return client.New(f.server.URL, client.WithTokenSource(auth.NewTokenSource("cm64_pat_test")))
}

// expire forgets the session, as a restarted server would
func (f *fakeRemote) expire(sessionID string) {
	f.mux.Lock()
	defer f.mux.Unlock()
	delete(f.valid, sessionID)
}

func (f *fakeRemote) methodCalls(method string) []call {
	f.mux.Lock()
	defer f.mux.Unlock()
	var ret []call
	for _, c := range f.calls {
		if c.Method == method {
			ret = append(ret, c)
		}
	}
	return ret
}

func (f *fakeRemote) deleted() []string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]string(nil), f.deletes...)
}

func (f *fakeRemote) serve(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get("mcp-session-id")
	if r.Method == http.MethodDelete {
		f.mux.Lock()
		f.deletes = append(f.deletes, sessionID)
		delete(f.valid, sessionID)
		f.mux.Unlock()
		w.WriteHeader(http.StatusOK)
		return
	}
	data, _ := io.ReadAll(r.Body)
	message := struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}{}
	if err := json.Unmarshal(data, &message); err != nil {
		http.Error(w, "Parse error", http.StatusBadRequest)
		return
	}
	f.mux.Lock()
	f.calls = append(f.calls, call{
		Method:    message.Method,
		ID:        strings.Trim(string(message.ID), `"`),
		SessionID: sessionID,
		Auth:      r.Header.Get("Authorization"),
		Params:    message.Params,
	})
	f.mux.Unlock()

	if message.Method == "initialize" {
		f.initialize(w, message.ID)
		return
	}
	f.mux.Lock()
	valid := f.valid[sessionID] && !f.alwaysMissing
	f.mux.Unlock()
	switch {
	case !valid:
		http.Error(w, `{"jsonrpc":"2.0","error":{"code":-32000,"message":"Session not found"},"id":null}`, http.StatusNotFound)
	case len(message.ID) == 0:
		w.WriteHeader(http.StatusAccepted)
	default:
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":{"method":%q,"session":%q}}`, message.ID, message.Method, sessionID)
	}
}

func (f *fakeRemote) initialize(w http.ResponseWriter, id json.RawMessage) {
	f.mux.Lock()
	status, initError, delay := f.initStatus, f.initError, f.initDelay
	f.mux.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if status != 0 {
		http.Error(w, "internal error", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if initError != "" {
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32603,"message":%q}}`, id, initError)
		return
	}
	f.mux.Lock()
	sessionID := fmt.Sprintf("session-%d", f.issued+1)
	if f.issued < len(f.sessions) {
		sessionID = f.sessions[f.issued]
	}
	f.issued++
	f.valid[sessionID] = true
	f.mux.Unlock()
	w.Header().Set("mcp-session-id", sessionID)
	_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":{"protocolVersion":"2024-11-05","capabilities":{},"serverInfo":{"name":"cm64","version":"1.0.0"}}}`, id)
}
