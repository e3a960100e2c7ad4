package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/kin/config"
)

const reloadPeopleCSV = `first,last,gender,born,died,father,mother,spouse
Abe,Hill,m,1950,,,,Ann Stone
Ann,Stone,f,1952,,,,Abe Hill
Cal,,m,1980,,Abe Hill,Ann Stone,
`

// A kin.toml edit while the menu runs must rebuild under the edited
// policy, not the one cached at startup.
// chdir switches to dir for the duration of the test, restoring the
// original working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadTreeWithUsesFreshConfig(t *testing.T) {
	chdir(t, t.TempDir())
	config.Reset()
	t.Cleanup(config.Reset)

	require.NoError(t, os.WriteFile("people.csv", []byte(reloadPeopleCSV), 0644))
	require.NoError(t, os.WriteFile("kin.toml", []byte("[build]\nsurname_line = \"father\"\n"), 0644))

	tr, cfg, err := loadTree()
	require.NoError(t, err)
	require.Equal(t, "father", cfg.Build.SurnameLine)
	_, ok := tr.Resolve("Cal Hill")
	require.True(t, ok, "father-line policy gives Cal his father's surname")

	// Edit the config file behind the cached Load()
	require.NoError(t, os.WriteFile("kin.toml", []byte("[build]\nsurname_line = \"mother\"\n"), 0644))
	fresh, err := config.LoadFromFile("kin.toml")
	require.NoError(t, err)

	rebuilt, err := loadTreeWith(fresh, "")
	require.NoError(t, err)
	_, ok = rebuilt.Resolve("Cal Stone")
	assert.True(t, ok, "rebuild under the edited config must use the new surname line")
	_, ok = rebuilt.Resolve("Cal Hill")
	assert.False(t, ok)
}

func TestLoadTreeWithFileOverride(t *testing.T) {
	chdir(t, t.TempDir())
	config.Reset()
	t.Cleanup(config.Reset)

	require.NoError(t, os.WriteFile("family.csv", []byte(reloadPeopleCSV), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)

	tr, err := loadTreeWith(cfg, "family.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
}
