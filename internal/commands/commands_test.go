package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duebook-dev/duebook/internal/commands"
	"github.com/duebook-dev/duebook/internal/ledgerfile"
)

// runDuebook executes the CLI in-process against the ledger file at path.
func runDuebook(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--file", path, "--config", filepath.Join(t.TempDir(), "duebook.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func ledgerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "expenses.json")
}

func TestAdd_WritesFile(t *testing.T) {
	path := ledgerPath(t)

	out, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Rent")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Rent"`)
	assert.Contains(t, string(data), `"cost": 1200`)
	assert.Contains(t, string(data), `"net_worth": -1200`)
}

func TestAdd_RequiresDue(t *testing.T) {
	_, err := runDuebook(t, ledgerPath(t), "add", "Rent", "--cost", "1200")
	require.Error(t, err)
}

func TestAdd_DuplicateFails(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	_, err = runDuebook(t, path, "add", "Rent", "--cost", "900", "--due", "2")
	require.Error(t, err)
}

func TestAdd_BadAmount(t *testing.T) {
	_, err := runDuebook(t, ledgerPath(t), "add", "Rent", "--cost", "twelve", "--due", "1")
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "remove", "Rent")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Rent")

	_, err = runDuebook(t, path, "remove", "Rent")
	require.Error(t, err, "second remove fails with not found")
}

func TestEdit(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	_, err = runDuebook(t, path, "edit", "Rent", "--cost", "1250")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "$1250")
}

func TestEdit_NoFlags(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	_, err = runDuebook(t, path, "edit", "Rent")
	require.Error(t, err)
}

func TestPay_TogglesAcrossInvocations(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "pay", "Rent")
	require.NoError(t, err)
	assert.Contains(t, out, "marked paid")

	out, err = runDuebook(t, path, "pay", "Rent")
	require.NoError(t, err)
	assert.Contains(t, out, "marked unpaid")
}

func TestReset(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)
	_, err = runDuebook(t, path, "pay", "Rent")
	require.NoError(t, err)

	_, err = runDuebook(t, path, "reset")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "yes")
}

func TestIncomeAndNetWorth(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)
	_, err = runDuebook(t, path, "add", "Internet", "--cost", "60", "--due", "15")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "income", "3000")
	require.NoError(t, err)
	assert.Contains(t, out, "net worth $1740")

	out, err = runDuebook(t, path, "networth")
	require.NoError(t, err)
	assert.Contains(t, out, "Net worth: $1740")
}

func TestNetWorth_NegativeSignBeforeSymbol(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "networth")
	require.NoError(t, err)
	assert.Contains(t, out, "Net worth: -$1200")
	assert.NotContains(t, out, "$-")
}

func TestShow_EmptyLedger(t *testing.T) {
	out, err := runDuebook(t, ledgerPath(t), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Income:    $0")
	assert.Contains(t, out, "Expenses:  0")
}

func TestShow_Table(t *testing.T) {
	path := ledgerPath(t)
	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err)

	out, err := runDuebook(t, path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "$1200")
}

func TestCorruptLedgerRecovered(t *testing.T) {
	path := ledgerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := runDuebook(t, path, "add", "Rent", "--cost", "1200", "--due", "1")
	require.NoError(t, err, "corrupt file starts over from the empty ledger")

	out, err := runDuebook(t, path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Rent")
}

func TestEnvOverridesLedgerPath(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env-ledger.json")
	t.Setenv("DUEBOOK_FILE", envPath)

	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "duebook.yaml"), "add", "Rent", "--cost", "10", "--due", "1"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(envPath)
	require.NoError(t, err, "ledger written to the env-configured path")
}

func TestConfigCurrency(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "duebook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("currency: \"€\"\n"), 0o644))
	path := filepath.Join(dir, ledgerfile.Filename)

	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--file", path, "--config", cfgPath, "add", "Rent", "--cost", "5", "--due", "1"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "€5")
}
