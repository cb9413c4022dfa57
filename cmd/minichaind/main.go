package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"minichain/config"
	"minichain/core"
	"minichain/core/genesis"
	"minichain/core/types"
	"minichain/native/poe"
	"minichain/observability/logging"
)

const (
	genesisPathEnv = "MINICHAIN_GENESIS"
	envEnv         = "MINICHAIN_ENV"
)

func main() {
	configFile := flag.String("config", "./config.toml", "Path to the configuration file")
	genesisFlag := flag.String("genesis", "", "Path to a genesis spec JSON file (overrides MINICHAIN_GENESIS and config GenesisFile)")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv(envEnv))
	logger := logging.Setup("minichain", env)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	genesisPath := resolveGenesisPath(*genesisFlag, cfg.GenesisFile, os.LookupEnv)
	spec, err := loadOrCreateGenesis(genesisPath)
	if err != nil {
		logger.Error("Failed to load genesis spec", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.MetricsAddress != "" {
		go serveMetrics(cfg.MetricsAddress, logger)
	}

	sp := core.NewStateProcessor()
	sp.SetLogger(logger)
	if err := genesis.Apply(spec, sp.Bank); err != nil {
		logger.Error("Failed to apply genesis allocations", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runDemo(sp, logger); err != nil {
		logger.Error("Block execution failed", slog.Any("error", err))
		os.Exit(1)
	}

	dump, err := stateDump(sp)
	if err != nil {
		logger.Error("Failed to render final state", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(dump)
}

// runDemo executes the reference scenario: a block of transfers from
// alice, then a block claiming two documents.
func runDemo(sp *core.StateProcessor, logger *slog.Logger) error {
	alice := types.AccountID("alice")
	bob := types.AccountID("bob")
	charlie := types.AccountID("charlie")

	block1 := types.NewBlock(&types.BlockHeader{Height: 1}, []types.Extrinsic{
		{Caller: alice, Call: types.NewTransferCall(bob, uint256.NewInt(30))},
		{Caller: alice, Call: types.NewTransferCall(charlie, uint256.NewInt(20))},
	})
	block2 := types.NewBlock(&types.BlockHeader{Height: 2}, []types.Extrinsic{
		{Caller: alice, Call: types.NewCreateClaimCall(poe.ContentDigest([]byte("my_document")))},
		{Caller: alice, Call: types.NewCreateClaimCall(poe.ContentDigest([]byte("bobs_document")))},
	})

	for _, block := range []*types.Block{block1, block2} {
		receipts, err := sp.ExecuteBlock(block)
		if err != nil {
			return fmt.Errorf("execute block %d: %w", block.Header.Height, err)
		}
		for _, receipt := range receipts {
			if !receipt.OK() {
				logger.Warn("extrinsic rejected",
					slog.Uint64("height", block.Header.Height),
					slog.Int("index", receipt.Index),
					slog.Any("error", receipt.Err))
			}
		}
	}
	return nil
}

// stateDump renders the final runtime state as indented JSON.
func stateDump(sp *core.StateProcessor) (string, error) {
	balances := make(map[string]string)
	for who, balance := range sp.Bank.Balances() {
		balances[string(who)] = balance.Dec()
	}
	claims := make(map[string]string)
	for content, owner := range sp.PoE.Claims() {
		claims[content] = string(owner)
	}
	nonces := make(map[string]uint64)
	for who, nonce := range sp.System.Nonces() {
		nonces[string(who)] = nonce
	}

	out := struct {
		BlockNumber uint64            `json:"blockNumber"`
		Balances    map[string]string `json:"balances"`
		Claims      map[string]string `json:"claims"`
		Nonces      map[string]uint64 `json:"nonces"`
	}{
		BlockNumber: sp.BlockNumber(),
		Balances:    balances,
		Claims:      claims,
		Nonces:      nonces,
	}
	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func resolveGenesisPath(flagValue, configValue string, lookup func(string) (string, bool)) string {
	if trimmed := strings.TrimSpace(flagValue); trimmed != "" {
		return trimmed
	}
	if fromEnv, ok := lookup(genesisPathEnv); ok {
		if trimmed := strings.TrimSpace(fromEnv); trimmed != "" {
			return trimmed
		}
	}
	return configValue
}

// loadOrCreateGenesis reads the genesis spec, writing a default single
// funded account when no spec exists yet.
func loadOrCreateGenesis(path string) (*genesis.GenesisSpec, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		spec := &genesis.GenesisSpec{
			ChainName: "minichain-dev",
			Alloc:     map[string]string{"alice": "100"},
		}
		raw, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return nil, fmt.Errorf("write default genesis: %w", err)
		}
		return spec, nil
	}
	return genesis.LoadSpec(path)
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server stopped", slog.Any("error", err))
	}
}
