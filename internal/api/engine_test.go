package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"walletlink/internal/engine"
	"walletlink/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngineRouter wires the /engine group against a fake relay and
// returns the router plus a counter of upstream calls.
func newEngineRouter(t *testing.T, st *store.Store, relay http.HandlerFunc) (*gin.Engine, *atomic.Int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var calls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		relay(w, r)
	}))
	t.Cleanup(upstream.Close)

	eng := engine.New(upstream.URL, "5", "0xC0FFEE", "0xBACKEND", "top-secret")
	r := gin.New()
	engineGroup := r.Group("/engine")
	engineGroup.POST("/claim-erc20", ClaimERC20Handler(st, eng))
	engineGroup.POST("/get-erc20-balance", GetERC20BalanceHandler(st, eng))
	return r, &calls
}

func okRelay(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

// linkedSession registers alice with a linked wallet and returns a
// session token for her.
func linkedSession(t *testing.T, st *store.Store) string {
	t.Helper()
	require.NoError(t, st.CreateAccount("alice", "pw1"))
	require.NoError(t, st.LinkWallet("alice", "0xABC"))
	return st.IssueSession("alice")
}

func TestClaimERC20Handler(t *testing.T) {
	t.Run("unknown token makes no upstream call", func(t *testing.T) {
		st := store.New()
		r, calls := newEngineRouter(t, st, okRelay(`{}`))

		for _, body := range []string{`{}`, `{"authToken":"never-issued"}`, ``} {
			w := doJSON(r, "/engine/claim-erc20", body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"message":"Invalid auth token"}`, w.Body.String())
		}
		assert.Zero(t, calls.Load())
	})

	t.Run("no linked wallet makes no upstream call", func(t *testing.T) {
		st := store.New()
		require.NoError(t, st.CreateAccount("alice", "pw1"))
		token := st.IssueSession("alice")
		r, calls := newEngineRouter(t, st, okRelay(`{}`))

		w := doJSON(r, "/engine/claim-erc20", `{"authToken":"`+token+`"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"No wallet linked to this account"}`, w.Body.String())
		assert.Zero(t, calls.Load())
	})

	t.Run("passes the relay response through", func(t *testing.T) {
		st := store.New()
		token := linkedSession(t, st)
		r, calls := newEngineRouter(t, st, okRelay(`{"result":{"queueId":"q-1"}}`))

		w := doJSON(r, "/engine/claim-erc20", `{"authToken":"`+token+`"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"queueId":"q-1"}}`, w.Body.String())
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("upstream failure surfaces a generic message", func(t *testing.T) {
		st := store.New()
		token := linkedSession(t, st)
		r, _ := newEngineRouter(t, st, func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		w := doJSON(r, "/engine/claim-erc20", `{"authToken":"`+token+`"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Error claiming ERC20"}`, w.Body.String())
	})
}

func TestGetERC20BalanceHandler(t *testing.T) {
	t.Run("unknown token makes no upstream call", func(t *testing.T) {
		st := store.New()
		r, calls := newEngineRouter(t, st, okRelay(`{}`))

		w := doJSON(r, "/engine/get-erc20-balance", `{"authToken":"never-issued"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid auth token"}`, w.Body.String())
		assert.Zero(t, calls.Load())
	})

	t.Run("passes the relay response through", func(t *testing.T) {
		st := store.New()
		token := linkedSession(t, st)
		r, calls := newEngineRouter(t, st, okRelay(`{"result":{"displayValue":"42"}}`))

		w := doJSON(r, "/engine/get-erc20-balance", `{"authToken":"`+token+`"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"displayValue":"42"}}`, w.Body.String())
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("upstream failure surfaces a generic message", func(t *testing.T) {
		st := store.New()
		token := linkedSession(t, st)
		r, _ := newEngineRouter(t, st, func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})

		w := doJSON(r, "/engine/get-erc20-balance", `{"authToken":"`+token+`"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Error retrieving ERC20 balance"}`, w.Body.String())
	})
}
