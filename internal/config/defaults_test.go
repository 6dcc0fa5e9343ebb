package config

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pixolin/wpplugin/pkg/config"
)

// Tests are run as part of Koanf Loader Suite from koanf_test.go.

var _ = Describe("Defaults", func() {
	Describe("DefaultConfig", func() {
		It("returns a complete config with all sections", func() {
			cfg := DefaultConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Version).To(Equal(config.CurrentConfigVersion))
			Expect(cfg.Directory).NotTo(BeNil())
			Expect(cfg.Output).NotTo(BeNil())
			Expect(cfg.Clipboard).NotTo(BeNil())
			Expect(cfg.Update).NotTo(BeNil())
		})

		It("passes validation", func() {
			Expect(NewValidator().Validate(DefaultConfig())).To(Succeed())
		})
	})

	Describe("DefaultDirectoryConfig", func() {
		It("returns directory config with correct defaults", func() {
			cfg := DefaultDirectoryConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.APIURL).To(Equal(config.DefaultAPIURL))
			Expect(cfg.Locale).To(Equal("de"))
			Expect(cfg.Timeout.ToDuration()).To(Equal(20 * time.Second))
			Expect(cfg.PageSize).NotTo(BeNil())
			Expect(*cfg.PageSize).To(Equal(10))
		})

		It("leaves the base URL empty so it derives from the locale", func() {
			cfg := DefaultDirectoryConfig()
			Expect(cfg.BaseURL).To(BeEmpty())
			Expect(cfg.GetBaseURL()).To(Equal("https://de.wordpress.org/plugins/"))
		})
	})

	Describe("DefaultOutputConfig", func() {
		It("defaults to HTML links", func() {
			cfg := DefaultOutputConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Format).To(Equal(config.FormatHTML))
		})
	})

	Describe("DefaultClipboardConfig", func() {
		It("enables the clipboard", func() {
			cfg := DefaultClipboardConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Enabled).NotTo(BeNil())
			Expect(*cfg.Enabled).To(BeTrue())
		})
	})

	Describe("DefaultUpdateConfig", func() {
		It("returns update config with correct defaults", func() {
			cfg := DefaultUpdateConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Repository).To(Equal(config.DefaultUpdateRepository))
			Expect(cfg.Timeout.ToDuration()).To(Equal(30 * time.Second))
		})
	})

	Describe("agreement with the koanf defaults layer", func() {
		It("produces the same values as an empty Load", func() {
			loader, err := NewKoanfLoaderWithDirs(
				GinkgoT().TempDir(),
				GinkgoT().TempDir(),
			)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			built := DefaultConfig()
			Expect(loaded.GetDirectory().GetAPIURL()).To(Equal(built.Directory.GetAPIURL()))
			Expect(loaded.GetDirectory().GetLocale()).To(Equal(built.Directory.GetLocale()))
			Expect(loaded.GetDirectory().GetTimeout()).To(Equal(built.Directory.GetTimeout()))
			Expect(loaded.GetDirectory().GetPageSize()).To(Equal(built.Directory.GetPageSize()))
			Expect(loaded.GetOutput().GetFormat()).To(Equal(built.Output.GetFormat()))
			Expect(loaded.GetClipboard().IsEnabled()).To(Equal(built.Clipboard.IsEnabled()))
			Expect(loaded.GetUpdate().GetRepository()).To(Equal(built.Update.GetRepository()))
			Expect(loaded.GetUpdate().GetTimeout()).To(Equal(built.Update.GetTimeout()))
		})
	})
})
