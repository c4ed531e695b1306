package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	conf, err := (&Config{Database: "app", Password: "secret"}).withDefaults()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", conf.Host)
	assert.Equal(t, 3306, conf.Port)
	assert.Equal(t, "root", conf.User)
	assert.Equal(t, "secret", conf.Password)
	assert.Equal(t, "127.0.0.1:3306", conf.Addr())
}

func TestConfigOverrides(t *testing.T) {
	in := &Config{Host: "db", Port: 3307, User: "app"}
	conf, err := in.withDefaults()
	require.NoError(t, err)
	assert.Equal(t, "db:3307", conf.Addr())
	assert.Equal(t, "app", conf.User)
	assert.Equal(t, "", in.Database)
}

func TestConfigDSN(t *testing.T) {
	conf := &Config{Host: "db", Port: 3306, User: "app", Password: "pw", Database: "shop"}
	dsn := conf.DSN()
	assert.Contains(t, dsn, "app:pw@tcp(db:3306)/shop")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestToOutputStr(t *testing.T) {
	assert.Equal(t, "nil", toOutputStr(nil))
	assert.Equal(t, "?1=1 ?2=a ?3=<binary>", toOutputStr([]interface{}{1, "a", []byte("x")}))
}
