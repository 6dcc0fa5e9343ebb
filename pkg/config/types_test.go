package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pixolin/wpplugin/pkg/config"
)

// Tests are run as part of Config Suite from config_test.go.

var _ = Describe("Format", func() {
	Describe("ParseFormat", func() {
		It("should parse 'html' correctly", func() {
			format, err := config.ParseFormat("html")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatHTML))
		})

		It("should parse 'markdown' correctly", func() {
			format, err := config.ParseFormat("markdown")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatMarkdown))
		})

		It("should parse 'bbcode' correctly", func() {
			format, err := config.ParseFormat("bbcode")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatBBCode))
		})

		It("should parse 'plain' correctly", func() {
			format, err := config.ParseFormat("plain")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatPlain))
		})

		It("should return error for invalid format", func() {
			format, err := config.ParseFormat("rtf")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
			Expect(format).To(Equal(config.FormatUnknown))
		})

		It("should return error for empty string", func() {
			_, err := config.ParseFormat("")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
		})
	})

	Describe("round trip", func() {
		It("should survive text marshaling", func() {
			text, err := config.FormatBBCode.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var format config.Format
			Expect(format.UnmarshalText(text)).To(Succeed())
			Expect(format).To(Equal(config.FormatBBCode))
		})
	})
})

var _ = Describe("Duration", func() {
	Describe("UnmarshalText", func() {
		It("should parse valid duration strings", func() {
			var d config.Duration
			err := d.UnmarshalText([]byte("20s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("20s"))
		})

		It("should parse duration with multiple units", func() {
			var d config.Duration
			err := d.UnmarshalText([]byte("1m30s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("1m30s"))
		})

		It("should return error for invalid duration format", func() {
			var d config.Duration
			err := d.UnmarshalText([]byte("soon"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid duration"))
		})

		It("should return error for negative duration", func() {
			var d config.Duration
			err := d.UnmarshalText([]byte("-20s"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrNegativeDuration)).To(BeTrue())
		})
	})

	Describe("MarshalText", func() {
		It("should marshal duration to text", func() {
			var d config.Duration
			_ = d.UnmarshalText([]byte("45s"))
			text, err := d.MarshalText()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(text)).To(Equal("45s"))
		})
	})
})
