package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminAccounts(t *testing.T) {
	accounts, err := ParseAdminAccounts("jordan@framelight.example:Jordan Avery:s3cret, priya@framelight.example:hunter2")
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "jordan@framelight.example", accounts[0].Email)
	assert.Equal(t, "Jordan Avery", accounts[0].Name)
	assert.Equal(t, "s3cret", accounts[0].Password)

	// Name omitted: local part of the email is used.
	assert.Equal(t, "priya", accounts[1].Name)
	assert.Equal(t, "hunter2", accounts[1].Password)
}

func TestParseAdminAccounts_Empty(t *testing.T) {
	accounts, err := ParseAdminAccounts("")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestParseAdminAccounts_Invalid(t *testing.T) {
	_, err := ParseAdminAccounts("not-an-email:pw")
	require.Error(t, err)

	_, err = ParseAdminAccounts("a@b.c:")
	require.Error(t, err)

	_, err = ParseAdminAccounts("toomany:colons:in:this:entry")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/framelight"},
	}
	require.NoError(t, cfg.Validate())

	cfg.App.Environment = "testing"
	require.Error(t, cfg.Validate())

	cfg.App.Environment = "production"
	cfg.Logger.Level = "verbose"
	require.Error(t, cfg.Validate())

	cfg.Logger.Level = "warn"
	cfg.Data.BasePath = ""
	require.Error(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
	assert.Nil(t, splitList(""))
}
