package config_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pelletier/go-toml/v2"

	"github.com/pixolin/wpplugin/internal/config"
	"github.com/pixolin/wpplugin/internal/schema"
	pkgConfig "github.com/pixolin/wpplugin/pkg/config"
)

// Tests are run as part of Koanf Loader Suite from koanf_test.go.

var _ = Describe("Writer", func() {
	var (
		tmpDir  string
		homeDir string
		workDir string
		writer  *config.Writer
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "writer-test-*")
		Expect(err).ToNot(HaveOccurred())

		homeDir = filepath.Join(tmpDir, "home")
		workDir = filepath.Join(tmpDir, "work")

		Expect(os.MkdirAll(homeDir, 0o700)).To(Succeed())
		Expect(os.MkdirAll(workDir, 0o700)).To(Succeed())

		writer = config.NewWriterWithDirs(homeDir, workDir)
	})

	AfterEach(func() {
		if tmpDir != "" {
			os.RemoveAll(tmpDir)
		}
	})

	Describe("WriteFile", func() {
		It("rejects a nil config", func() {
			err := writer.WriteFile(filepath.Join(tmpDir, "x.toml"), nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidConfig)).To(BeTrue())
		})

		Context("with a default config", func() {
			var path string

			BeforeEach(func() {
				path = filepath.Join(tmpDir, "nested", "config.toml")
				Expect(writer.WriteFile(path, config.DefaultConfig())).To(Succeed())
			})

			It("creates the parent directory with restricted permissions", func() {
				info, err := os.Stat(filepath.Dir(path))
				Expect(err).ToNot(HaveOccurred())
				Expect(info.IsDir()).To(BeTrue())
				Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o700)))
			})

			It("writes the file with restricted permissions", func() {
				info, err := os.Stat(path)
				Expect(err).ToNot(HaveOccurred())
				Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
			})

			It("starts with the Taplo schema directive", func() {
				data, err := os.ReadFile(path)
				Expect(err).ToNot(HaveOccurred())

				firstLine, _, _ := strings.Cut(string(data), "\n")
				Expect(firstLine).To(Equal(schema.SchemaDirective()))
			})

			It("indents nested tables", func() {
				data, err := os.ReadFile(path)
				Expect(err).ToNot(HaveOccurred())
				Expect(string(data)).To(ContainSubstring("[directory]"))
				Expect(string(data)).To(ContainSubstring("  api_url"))
			})

			It("round-trips through the TOML parser", func() {
				data, err := os.ReadFile(path)
				Expect(err).ToNot(HaveOccurred())

				var parsed pkgConfig.Config
				Expect(toml.Unmarshal(data, &parsed)).To(Succeed())

				Expect(parsed.Version).To(Equal(pkgConfig.CurrentConfigVersion))
				Expect(parsed.GetDirectory().GetLocale()).To(Equal("de"))
				Expect(parsed.GetDirectory().GetTimeout()).
					To(Equal(pkgConfig.DefaultTimeout))
				Expect(parsed.GetOutput().GetFormat()).To(Equal(pkgConfig.FormatHTML))
			})

			It("round-trips through the loader", func() {
				Expect(os.Rename(
					path,
					filepath.Join(workDir, config.ProjectConfigFile),
				)).To(Succeed())

				loader, err := config.NewKoanfLoaderWithDirs(homeDir, workDir)
				Expect(err).ToNot(HaveOccurred())

				cfg, err := loader.Load(nil)
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.GetDirectory().GetPageSize()).To(Equal(10))
				Expect(cfg.GetClipboard().IsEnabled()).To(BeTrue())
			})
		})
	})

	Describe("WriteGlobal", func() {
		It("writes to the global config path", func() {
			Expect(writer.IsGlobalConfigExists()).To(BeFalse())

			Expect(writer.WriteGlobal(config.DefaultConfig())).To(Succeed())

			Expect(writer.GlobalConfigPath()).To(Equal(
				filepath.Join(homeDir, config.GlobalConfigDir, config.GlobalConfigFile),
			))
			Expect(writer.GlobalConfigPath()).To(BeAnExistingFile())
			Expect(writer.IsGlobalConfigExists()).To(BeTrue())
		})
	})

	Describe("WriteProject", func() {
		It("writes to the primary project config path", func() {
			Expect(writer.IsProjectConfigExists()).To(BeFalse())

			Expect(writer.WriteProject(config.DefaultConfig())).To(Succeed())

			Expect(writer.ProjectConfigPath()).To(Equal(
				filepath.Join(workDir, config.ProjectConfigFile),
			))
			Expect(writer.ProjectConfigPath()).To(BeAnExistingFile())
			Expect(writer.IsProjectConfigExists()).To(BeTrue())
		})
	})

	Describe("EnsureGlobalConfigDir", func() {
		It("creates the global config directory", func() {
			Expect(writer.EnsureGlobalConfigDir()).To(Succeed())

			info, err := os.Stat(writer.GlobalConfigDir())
			Expect(err).ToNot(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o700)))
		})
	})
})
