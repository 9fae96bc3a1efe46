package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/commands"
	"github.com/cleared-dev/tappio/internal/config"
	"github.com/cleared-dev/tappio/internal/ledger"
	"github.com/cleared-dev/tappio/internal/tappio"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")
	res := runTappio(t, "", "init", dir, "--name", "2010")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Initialized Tappio ledger")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "2010", cfg.Document.Name)

	doc, err := tappio.LoadFile(filepath.Join(dir, commands.LedgerFileName), tappio.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "2010", doc.Name)
	assert.Empty(t, ledger.Validate(doc))
	assert.True(t, accounts.NewService(doc.Accounts).Exists(1920), "basic chart by default")
}

func TestInit_EmptyChart(t *testing.T) {
	dir := t.TempDir()
	res := runTappio(t, "", "init", dir, "--chart", "empty")
	require.NoError(t, res.err)

	doc, err := tappio.LoadFile(filepath.Join(dir, commands.LedgerFileName), tappio.UTF8)
	require.NoError(t, err)
	assert.Empty(t, accounts.NewService(doc.Accounts).All())
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("format: {}\n"), 0o644))

	res := runTappio(t, "", "init", dir)
	assert.ErrorContains(t, res.err, "already exists")

	_, err := os.Stat(filepath.Join(dir, commands.LedgerFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInit_RefusesExistingLedger(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := writeLedger(t, dir, commands.LedgerFileName, ledgerText)

	res := runTappio(t, "", "init", dir)
	assert.ErrorContains(t, res.err, "already exists")

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Equal(t, ledgerText, string(data), "existing ledger untouched")

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	assert.ErrorIs(t, err, os.ErrNotExist, "no config written either")
}

func TestInit_IgnoresEnvironment(t *testing.T) {
	t.Setenv("TAPPIO_VERSION", "from env")
	t.Setenv("TAPPIO_NEWLINE", "lf")

	dir := t.TempDir()
	res := runTappio(t, "", "init", dir, "--charset", "latin1")
	require.NoError(t, res.err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultVersion, cfg.Document.Version)
	assert.Equal(t, "crlf", cfg.Format.Newline)
	assert.Equal(t, "latin1", cfg.Format.Charset, "flags are kept")
}

func TestInit_Pretty(t *testing.T) {
	dir := t.TempDir()
	res := runTappio(t, "", "--pretty", "init", dir)
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, commands.LedgerFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\r\n")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.Format.Pretty)
}
