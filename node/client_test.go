package node

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/errors"
)

func TestSignAndBroadcast(t *testing.T) {
	var (
		gotKey  string
		gotPath string
		gotBody map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(APIKeyHeader)
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"8MJbKEhh4Q1Sfo","type":103}`))
	}))
	defer srv.Close()

	tx := &CreateContract{Sender: "3NkZd8Xd4KsuPiNVsuphRNCZE3SqJycqv8d", ContractName: "flip", Fee: 100000000}
	tx.Prepare([]byte{0x00, 0x61, 0x73, 0x6d})

	c := New(srv.URL+"/", "secret")
	resp, err := c.SignAndBroadcast(context.Background(), tx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "8MJbKEhh4Q1Sfo", resp.ID)
	assert.Equal(t, "200 8MJbKEhh4Q1Sfo", resp.String())

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, SignAndBroadcastPath, gotPath)
	assert.EqualValues(t, TypeCreateContract, gotBody["type"])
	assert.Equal(t, "flip", gotBody["contractName"])
	assert.Equal(t, []any{}, gotBody["params"])
	stored, ok := gotBody["storedContract"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AGFzbQ==", stored["bytecode"])
}

func TestSignAndBroadcastHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":112,"message":"invalid signature"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "k").SignAndBroadcast(context.Background(), map[string]any{"type": 104})
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDeploy, Kind: errors.KindTransport})
	assert.Contains(t, err.Error(), "http 400")
	assert.Contains(t, err.Error(), "invalid signature")

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.Value)
}

func TestSignAndBroadcastUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, "", WithTimeout(time.Second)).SignAndBroadcast(context.Background(), struct{}{})
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDeploy, Kind: errors.KindTransport})
}

func TestSignAndBroadcastNoAPIKey(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[http.CanonicalHeaderKey(APIKeyHeader)]
	}))
	defer srv.Close()

	resp, err := New(srv.URL, "", WithHTTPClient(srv.Client())).SignAndBroadcast(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.False(t, present)
	assert.Empty(t, resp.ID)
}

func TestNewStoredContract(t *testing.T) {
	sc := NewStoredContract([]byte("abc"))
	assert.Equal(t, "YWJj", sc.Bytecode)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sc.BytecodeHash)
}

func TestCallContractPrepare(t *testing.T) {
	tx := &CallContract{ContractID: "C1", ContractVersion: 1}
	tx.Prepare("increment", nil)

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.EqualValues(t, TypeCallContract, got["type"])
	assert.Equal(t, "increment", got["callFunc"])
	assert.Equal(t, "wasm", got["contractEngine"])
	assert.Equal(t, []any{}, got["params"])
	assert.Nil(t, got["feeAssetId"])
}

func TestLoadTxConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"nodeUrl": "http://localhost:6862",
		"apiKey": "we",
		"transaction": {
			"type": 103,
			"version": 7,
			"sender": "3NkZd8Xd4KsuPiNVsuphRNCZE3SqJycqv8d",
			"password": "",
			"contractName": "flip",
			"params": [{"key": "init_value", "type": "boolean", "value": true}],
			"fee": 0,
			"feeAssetId": null,
			"validationPolicy": {"type": "any"},
			"apiVersion": "1.0"
		}
	}`), 0o644))

	cfg, err := LoadTxConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:6862", cfg.NodeURL)
	assert.Equal(t, "we", cfg.APIKey)

	tx, err := cfg.CreateContract()
	require.NoError(t, err)
	assert.Equal(t, 7, tx.Version)
	assert.Equal(t, "flip", tx.ContractName)
	require.Len(t, tx.Params, 1)
	assert.Equal(t, true, tx.Params[0].Value)
	require.NotNil(t, tx.ValidationPolicy)
	assert.Equal(t, "any", tx.ValidationPolicy.Type)

	t.Run("missing transaction", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"nodeUrl":"x"}`), 0o644))
		_, err := LoadTxConfig(bad)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindMalformed})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTxConfig(filepath.Join(dir, "none.json"))
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindIO})
	})
}
