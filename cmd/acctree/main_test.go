package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(append([]string{"acctree"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

const twoAccounts = "alice,1234,1,GOLD,OK\nbob,4321,0,SILVER,OK\n"

func TestDump(t *testing.T) {
	p := writeData(t, "a.csv", twoAccounts)
	out, _, err := runCmd(t, "--data", p, "dump")
	require.NoError(t, err)
	assert.Equal(t, "(alice:1:1(bob:0:1))\n", out)

	out, _, err = runCmd(t, "-d", p, "dump", "--inner")
	require.NoError(t, err)
	assert.Equal(t, "(alice:1:1(bob:0:1))\nalice: (1234:1:0)\nbob: (4321:1:0)\n", out)
}

func TestDump_AppendsFiles(t *testing.T) {
	a := writeData(t, "a.csv", twoAccounts)
	b := writeData(t, "b.csv", "alice,7,0,,\nalice,1234,0,,\n")
	out, errOut, err := runCmd(t, "--log-level", "warn", "-d", a, "-d", b, "dump", "--inner")
	require.NoError(t, err)
	assert.Contains(t, out, "(alice:1:2(bob:0:1))\n")
	assert.Contains(t, out, "alice: ((7:1:0)1234:2:0)\n")
	assert.Contains(t, errOut, "skipping duplicate account")
}

func TestDump_EnvData(t *testing.T) {
	t.Setenv("ACCTREE_DATA", writeData(t, "a.csv", twoAccounts))
	out, _, err := runCmd(t, "dump")
	require.NoError(t, err)
	assert.Equal(t, "(alice:1:1(bob:0:1))\n", out)
}

func TestNoData(t *testing.T) {
	t.Setenv("ACCTREE_DATA", "")
	_, _, err := runCmd(t, "dump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no account files")
}

func TestMalformedData(t *testing.T) {
	p := writeData(t, "bad.csv", "alice,1234,1,GOLD,OK\nbob,4321,0\n")
	_, errOut, err := runCmd(t, "-d", p, "dump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv")
	assert.Contains(t, errOut, "load stopped")
}

func TestPrint(t *testing.T) {
	p := writeData(t, "a.csv", twoAccounts)
	out, _, err := runCmd(t, "-d", p, "print")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "alice : \n"))
	assert.Contains(t, out, "Account name: bob\n\tDiscriminator: 4321\n\tNitro: 0\n\tBadge: SILVER\n\tStatus: OK")
}

func TestTree(t *testing.T) {
	p := writeData(t, "a.csv", twoAccounts)
	out, _, err := runCmd(t, "-d", p, "tree", "--inner")
	require.NoError(t, err)
	assert.Contains(t, out, "UTree usernames=2")
	assert.Contains(t, out, "alice#1234")
}

func TestLookup(t *testing.T) {
	p := writeData(t, "a.csv", twoAccounts)
	out, _, err := runCmd(t, "-d", p, "lookup", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice: 1 users, 1 nodes, height 1\n", out)

	out, _, err = runCmd(t, "-d", p, "lookup", "bob", "4321")
	require.NoError(t, err)
	assert.Contains(t, out, "Account name: bob\n\tDiscriminator: 4321")

	_, _, err = runCmd(t, "-d", p, "lookup", "carl")
	assert.Error(t, err)
	_, _, err = runCmd(t, "-d", p, "lookup", "bob", "1")
	assert.Error(t, err)
	_, _, err = runCmd(t, "-d", p, "lookup", "bob", "x")
	assert.ErrorContains(t, err, "invalid discriminator")
	_, _, err = runCmd(t, "-d", p, "lookup")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	p := writeData(t, "a.csv", "alice,1234,1,GOLD,OK\nalice,20,0,,\n")
	out, _, err := runCmd(t, "-d", p, "remove", "alice", "20")
	require.NoError(t, err)
	assert.Equal(t, "alice: ((20:1:1)1234:2:1)\n", out)

	_, _, err = runCmd(t, "-d", p, "remove", "alice", "21")
	assert.ErrorContains(t, err, "account not found")
	_, _, err = runCmd(t, "-d", p, "remove", "alice")
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	p := writeData(t, "a.csv", twoAccounts+"bob,4321,1,,\n")
	_, errOut, err := runCmd(t, "--log-level", "ERROR", "-d", p, "dump")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "skipping duplicate account")

	t.Setenv("ACCTREE_LOG_LEVEL", "")
	_, errOut, err = runCmd(t, "-d", p, "dump")
	require.NoError(t, err)
	assert.Contains(t, errOut, "skipping duplicate account", "warn is the default")

	_, _, err = runCmd(t, "--log-level", "verbose", "-d", p, "dump")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)
}
