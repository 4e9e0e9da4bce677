package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/test"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

func init() {
	SetLogging(common.DefaultLogLevel, test.LogHandler())
}

var (
	genesis = governance.DefaultGenesis
	newHook = hook.NewDefinition([]byte("new hook code"))
)

type testServer struct {
	*httptest.Server
	t       *testing.T
	ledger  *ledger.Ledger
	members []account.ID
}

func newTestServer(t *testing.T) *testServer {
	l, err := ledger.New(storage.NewTestStorage(), ledger.DefaultBaseFee)
	require.NoError(t, err)
	require.NoError(t, l.AddDefinition(newHook))

	members := []account.ID{
		account.NewTestID("member-a"),
		account.NewTestID("member-b"),
		account.NewTestID("member-c"),
	}
	err = l.Seed(ledger.Fixture{
		Programs: []string{governance.ProgramName},
		Accounts: []ledger.AccountFixture{{
			Account: genesis,
			Hooks:   map[uint8]string{0: governance.ProgramName},
			Members: members,
		}},
	})
	require.NoError(t, err)

	api := NewNetworkHandlerAPI(l, governance.DefaultConfig(), "")

	return &testServer{
		Server:  httptest.NewServer(NewRouter(api, false)),
		t:       t,
		ledger:  l,
		members: members,
	}
}

func (ts *testServer) get(path string) (int, map[string]interface{}) {
	resp, err := http.Get(ts.URL + path)
	require.NoError(ts.t, err)

	return ts.decode(resp)
}

func (ts *testServer) post(path, contentType string, body []byte) (int, map[string]interface{}) {
	resp, err := http.Post(ts.URL+path, contentType, bytes.NewReader(body))
	require.NoError(ts.t, err)

	return ts.decode(resp)
}

func (ts *testServer) decode(resp *http.Response) (int, map[string]interface{}) {
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	require.NoError(ts.t, err)

	m := map[string]interface{}{}
	require.NoError(ts.t, json.Unmarshal(b, &m), string(b))

	return resp.StatusCode, m
}

func (ts *testServer) vote(member account.ID, slot uint8, value common.Hash) map[string]interface{} {
	tx := transaction.NewPayment(
		member,
		genesis,
		transaction.NewNativeAmount(1),
		transaction.NewHookParameter(governance.ParamTopic, governance.NewHookTopic(slot).Bytes()),
		transaction.NewHookParameter(governance.ParamValue, value.Bytes()),
	)
	body, err := json.Marshal(tx)
	require.NoError(ts.t, err)

	status, m := ts.post("/v1/transactions", "application/json", body)
	require.Equal(ts.t, http.StatusOK, status, m)

	return m
}

func records(m map[string]interface{}) []interface{} {
	embedded, ok := m["_embedded"].(map[string]interface{})
	if !ok {
		return nil
	}
	list, _ := embedded["records"].([]interface{})

	return list
}

func TestNodeInfo(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	status, m := ts.get("/v1/")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, genesis.Address(), m["genesis"])
	require.Equal(t, []interface{}{"Payment"}, m["envelope_types"])
	require.Contains(t, m["programs"], governance.ProgramName)
	require.Equal(t, float64(ledger.GenesisSequence), m["ledger_sequence"])
	require.Contains(t, m, "_links")
}

func TestPostTransactionContentType(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	status, m := ts.post("/v1/transactions", "text/plain", []byte("{}"))
	require.Equal(t, http.StatusUnsupportedMediaType, status)
	require.Equal(t, float64(http.StatusUnsupportedMediaType), m["status"])

	status, _ = ts.post("/v1/transactions", "application/json", []byte("not json"))
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.post("/v1/transactions", "application/json", []byte(`{"TransactionType": "Payment"}`))
	require.Equal(t, http.StatusBadRequest, status)
}

func TestVoteAndClose(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	m := ts.vote(ts.members[0], 3, newHook.HookHash)
	require.Equal(t, true, m["accepted"])
	require.Empty(t, m["emitted"])

	status, m := ts.get(fmt.Sprintf("/v1/accounts/%s/topics/H3/tallies", genesis.Address()))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, len(records(m)))

	status, m = ts.get(fmt.Sprintf("/v1/accounts/%s/topics/H3/votes?layer=1", genesis.Address()))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, len(records(m)))

	m = ts.vote(ts.members[1], 3, newHook.HookHash)
	require.Equal(t, true, m["accepted"])
	require.Empty(t, m["emitted"])

	// every member of the L1 table is needed
	m = ts.vote(ts.members[2], 3, newHook.HookHash)
	require.Equal(t, true, m["accepted"])
	require.Equal(t, 1, len(m["emitted"].([]interface{})))

	status, m = ts.get("/v1/ledger/emitted")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, len(records(m)))

	status, m = ts.post("/v1/ledger/close", "application/json", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(ledger.GenesisSequence+1), m["ledger_sequence"])

	status, m = ts.get(fmt.Sprintf("/v1/accounts/%s/hooks", genesis.Address()))
	require.Equal(t, http.StatusOK, status)
	hooks := m["hooks"].([]interface{})
	require.Equal(t, 2, len(hooks))
	require.Equal(t, governance.ProgramName, hooks[0].(map[string]interface{})["program"])
	require.Equal(t, newHook.HookHash.String(), hooks[1].(map[string]interface{})["hook_hash"])
}

func TestAccountTable(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	status, m := ts.get(fmt.Sprintf("/v1/accounts/%s/table", genesis.Address()))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, m["primary"])
	require.Equal(t, true, m["setup"])
	require.Equal(t, float64(3), m["member_count"])

	status, _ = ts.get("/v1/accounts/not-an-address/table")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.get(fmt.Sprintf("/v1/accounts/%s/topics/H10/tallies", genesis.Address()))
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.get(fmt.Sprintf("/v1/accounts/%s/topics/H3/tallies?layer=3", genesis.Address()))
	require.Equal(t, http.StatusBadRequest, status)
}

func TestDefinition(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	status, m := ts.get("/v1/definitions/" + newHook.HookHash.String())
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, newHook.HookHash.String(), m["hook_hash"])

	status, _ = ts.get("/v1/definitions/" + hook.Hash([]byte("unknown")).String())
	require.Equal(t, http.StatusNotFound, status)
}
