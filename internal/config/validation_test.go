package config

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pixolin/wpplugin/pkg/config"
)

// Tests are run as part of Koanf Loader Suite from koanf_test.go.

var _ = Describe("Validator", func() {
	var validator *Validator

	BeforeEach(func() {
		validator = NewValidator()
	})

	Describe("Validate", func() {
		It("rejects a nil config", func() {
			err := validator.Validate(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("config is nil"))
		})

		It("accepts an empty config", func() {
			Expect(validator.Validate(&config.Config{})).To(Succeed())
		})

		It("wraps section failures in ErrInvalidConfig", func() {
			cfg := &config.Config{
				Directory: &config.DirectoryConfig{Locale: "DE"},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
		})

		It("reports the number of failing sections", func() {
			pageSize := 0
			cfg := &config.Config{
				Directory: &config.DirectoryConfig{
					Locale:   "DE",
					PageSize: &pageSize,
				},
				Update: &config.UpdateConfig{Repository: "wpplugin"},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validation failed with 2 error(s)"))
		})
	})

	Describe("directory section", func() {
		It("accepts a well-formed section", func() {
			pageSize := 25
			cfg := &config.DirectoryConfig{
				APIURL:   "https://api.wordpress.org/plugins/info/1.2/",
				Locale:   "pt-br",
				BaseURL:  "https://br.wordpress.org/plugins/",
				Timeout:  config.Duration(0),
				PageSize: &pageSize,
			}

			Expect(validator.validateDirectoryConfig(cfg)).To(Succeed())
		})

		DescribeTable("rejects invalid values",
			func(cfg *config.DirectoryConfig, sentinel error) {
				err := validator.validateDirectoryConfig(cfg)
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, sentinel)).To(BeTrue())
			},
			Entry("api_url without scheme",
				&config.DirectoryConfig{APIURL: "api.wordpress.org/plugins"},
				ErrInvalidURL,
			),
			Entry("api_url with ftp scheme",
				&config.DirectoryConfig{APIURL: "ftp://api.wordpress.org/"},
				ErrInvalidURL,
			),
			Entry("base_url without trailing slash",
				&config.DirectoryConfig{BaseURL: "https://de.wordpress.org/plugins"},
				ErrInvalidURL,
			),
			Entry("uppercase locale",
				&config.DirectoryConfig{Locale: "DE"},
				ErrInvalidLocale,
			),
			Entry("locale with underscore",
				&config.DirectoryConfig{Locale: "pt_br"},
				ErrInvalidLocale,
			),
			Entry("negative timeout",
				&config.DirectoryConfig{Timeout: config.Duration(-1)},
				config.ErrNegativeDuration,
			),
			Entry("zero page size",
				&config.DirectoryConfig{PageSize: intPtr(0)},
				ErrInvalidPageSize,
			),
			Entry("negative page size",
				&config.DirectoryConfig{PageSize: intPtr(-3)},
				ErrInvalidPageSize,
			),
		)

		It("collects multiple failures at once", func() {
			cfg := &config.DirectoryConfig{
				APIURL: "not a url at all",
				Locale: "Deutschland",
			}

			err := validator.validateDirectoryConfig(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidURL)).To(BeTrue())
			Expect(errors.Is(err, ErrInvalidLocale)).To(BeTrue())
		})
	})

	Describe("output section", func() {
		It("accepts every named format", func() {
			for _, format := range config.FormatValues() {
				if format == config.FormatUnknown {
					continue
				}

				cfg := &config.OutputConfig{Format: format}
				Expect(validator.validateOutputConfig(cfg)).To(Succeed())
			}
		})

		It("accepts the unknown zero value", func() {
			Expect(validator.validateOutputConfig(&config.OutputConfig{})).To(Succeed())
		})

		It("rejects out-of-range values", func() {
			err := validator.validateOutputConfig(&config.OutputConfig{Format: config.Format(99)})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidOption)).To(BeTrue())
		})
	})

	Describe("update section", func() {
		It("accepts an owner/name repository", func() {
			cfg := &config.UpdateConfig{Repository: "pixolin/wpplugin"}

			Expect(validator.validateUpdateConfig(cfg)).To(Succeed())
		})

		DescribeTable("rejects malformed repositories",
			func(repository string) {
				err := validator.validateUpdateConfig(&config.UpdateConfig{
					Repository: repository,
				})
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, ErrInvalidRepository)).To(BeTrue())
			},
			Entry("no slash", "wpplugin"),
			Entry("empty owner", "/wpplugin"),
			Entry("empty name", "pixolin/"),
			Entry("extra segment", "github.com/pixolin/wpplugin"),
		)

		It("rejects a negative timeout", func() {
			err := validator.validateUpdateConfig(&config.UpdateConfig{
				Timeout: config.Duration(-1),
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrNegativeDuration)).To(BeTrue())
		})
	})

	Describe("combineErrors", func() {
		It("returns nil for an empty slice", func() {
			Expect(combineErrors(nil)).To(BeNil())
		})

		It("returns a single error unchanged", func() {
			single := errors.New("single error")
			Expect(combineErrors([]error{single})).To(Equal(single))
		})

		It("joins multiple errors", func() {
			err1 := errors.New("error 1")
			err2 := errors.New("error 2")

			err := combineErrors([]error{err1, err2})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, err1)).To(BeTrue())
			Expect(errors.Is(err, err2)).To(BeTrue())
		})
	})
})

func intPtr(v int) *int {
	return &v
}
