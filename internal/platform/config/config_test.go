package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

// chdir moves the test into dir and restores the original working
// directory in a cleanup. testing.T.Chdir needs Go 1.24; this keeps the
// suite buildable on older toolchains.
func (s *ConfigSuite) chdir(dir string) {
	s.T().Helper()
	old, err := os.Getwd()
	s.Require().NoError(err)
	s.Require().NoError(os.Chdir(dir))
	s.T().Cleanup(func() { _ = os.Chdir(old) })
}

func (s *ConfigSuite) TestDefaults() {
	cfg := FromEnv()

	s.Equal(":8080", cfg.Addr)
	s.Equal("development", cfg.Environment)
	s.Empty(cfg.AvatarBaseURL)
	s.Empty(cfg.AvatarModelID)
	s.Equal(60*time.Second, cfg.AvatarTimeout)
	s.Equal("assets", cfg.AssetsDir)
	s.Equal("output", cfg.OutputDir)
	s.Equal(int64(0), cfg.Seed)
	s.Equal(4, cfg.BatchWorkers)
}

func (s *ConfigSuite) TestOverrides() {
	s.T().Setenv("SHENFEN_ADDR", ":9090")
	s.T().Setenv("SHENFEN_AVATAR_BASE_URL", "http://localhost:8081")
	s.T().Setenv("SHENFEN_AVATAR_MODEL_ID", "portrait-v2")
	s.T().Setenv("SHENFEN_AVATAR_TIMEOUT", "5s")
	s.T().Setenv("SHENFEN_ASSETS_DIR", "/opt/shenfen/assets")
	s.T().Setenv("SHENFEN_SEED", "42")
	s.T().Setenv("SHENFEN_BATCH_WORKERS", "8")

	cfg := FromEnv()

	s.Equal(":9090", cfg.Addr)
	s.Equal("http://localhost:8081", cfg.AvatarBaseURL)
	s.Equal("portrait-v2", cfg.AvatarModelID)
	s.Equal(5*time.Second, cfg.AvatarTimeout)
	s.Equal("/opt/shenfen/assets", cfg.AssetsDir)
	s.Equal(int64(42), cfg.Seed)
	s.Equal(8, cfg.BatchWorkers)
}

func (s *ConfigSuite) TestMalformedValuesFallBack() {
	s.T().Setenv("SHENFEN_AVATAR_TIMEOUT", "not-a-duration")
	s.T().Setenv("SHENFEN_SEED", "abc")

	cfg := FromEnv()

	s.Equal(60*time.Second, cfg.AvatarTimeout)
	s.Equal(int64(0), cfg.Seed)
}

func (s *ConfigSuite) TestLoadDotEnv() {
	// godotenv never overrides variables that are already set, so clear
	// the probe before and after.
	s.Require().NoError(os.Unsetenv("SHENFEN_DOTENV_PROBE"))
	s.T().Cleanup(func() { os.Unsetenv("SHENFEN_DOTENV_PROBE") })

	dir := s.T().TempDir()
	envFile := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(envFile, []byte("SHENFEN_DOTENV_PROBE=loaded\n"), 0o644))
	s.chdir(dir)

	LoadDotEnv()

	s.Equal("loaded", os.Getenv("SHENFEN_DOTENV_PROBE"))
}

func (s *ConfigSuite) TestLoadDotEnvWithoutFileIsANoOp() {
	s.chdir(s.T().TempDir())

	LoadDotEnv()

	cfg := FromEnv()
	s.Equal(":8080", cfg.Addr)
}
