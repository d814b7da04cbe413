package console_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eulerplot/internal/console"
	"github.com/san-kum/eulerplot/internal/dynamo"
	"github.com/san-kum/eulerplot/internal/integrators"
)

var _ = Describe("Prompter", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("should read the four values in order", func() {
		p := console.NewPrompter(strings.NewReader("0.1\n 0.2 \n0.05\n10\n"), out)
		var params dynamo.Params

		Expect(p.Complete(&params, console.Known{})).To(Succeed())

		Expect(params).To(Equal(dynamo.Params{X0: 0.1, Y0: 0.2, StepLength: 0.05, StepCount: 10}))
		Expect(out.String()).To(Equal(console.PromptX0 + console.PromptY0 + console.PromptStep + console.PromptCount))
	})

	It("should skip values that are already known", func() {
		p := console.NewPrompter(strings.NewReader("3\n"), out)
		params := dynamo.Params{X0: 1, Y0: 2, StepLength: 0.5}

		Expect(p.Complete(&params, console.Known{X0: true, Y0: true, StepLength: true})).To(Succeed())

		Expect(params.StepCount).To(Equal(3))
		Expect(out.String()).To(Equal(console.PromptCount))
	})

	It("should accept a last line without a newline", func() {
		p := console.NewPrompter(strings.NewReader("7"), out)
		n, err := p.Int(console.PromptCount, "number of steps")
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(7))
	})

	It("should pass NaN and infinities through", func() {
		p := console.NewPrompter(strings.NewReader("NaN\ninf\n"), out)

		v, err := p.Float(console.PromptX0, "x")
		Expect(err).ToNot(HaveOccurred())
		Expect(math.IsNaN(v)).To(BeTrue())

		v, err = p.Float(console.PromptY0, "y")
		Expect(err).ToNot(HaveOccurred())
		Expect(math.IsInf(v, 1)).To(BeTrue())
	})

	It("should fail on a malformed float without asking again", func() {
		p := console.NewPrompter(strings.NewReader("abc\n1\n1\n1\n"), out)
		var params dynamo.Params

		err := p.Complete(&params, console.Known{})

		var ie *dynamo.InputError
		Expect(errors.As(err, &ie)).To(BeTrue())
		Expect(ie.Field).To(Equal("x"))
		Expect(ie.Input).To(Equal("abc"))
		Expect(errors.Is(err, strconv.ErrSyntax)).To(BeTrue())
		Expect(out.String()).To(Equal(console.PromptX0))
	})

	It("should fail on a fractional step count", func() {
		p := console.NewPrompter(strings.NewReader("2.5\n"), out)
		_, err := p.Int(console.PromptCount, "number of steps")

		var ie *dynamo.InputError
		Expect(errors.As(err, &ie)).To(BeTrue())
		Expect(ie.Field).To(Equal("number of steps"))
	})

	It("should fail when input ends early", func() {
		p := console.NewPrompter(strings.NewReader("1\n"), out)
		var params dynamo.Params

		err := p.Complete(&params, console.Known{})

		Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
	})
})

var _ = Describe("WriteTable", func() {
	It("should print a header and one fixed-width row per step", func() {
		s := integrators.Integrate(dynamo.Params{X0: 0, Y0: 1, StepLength: 0.1, StepCount: 2}, dynamo.Exponential(2))
		var buf bytes.Buffer

		Expect(console.WriteTable(&buf, s)).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(Equal("     x approx y (Euler) approx y (Midpoint)          exact y"))
		Expect(lines[1]).To(Equal("     - ---------------- -----------------          -------"))
		Expect(lines[2]).To(Equal("  0.10     1.2000000000     1.2200000000     1.2214027582"))
		Expect(lines[3]).To(HavePrefix("  0.20     1.4400000000     1.4884000000"))
	})

	It("should print only the header for zero steps", func() {
		var buf bytes.Buffer
		Expect(console.WriteTable(&buf, dynamo.NewSeries(0))).To(Succeed())
		Expect(strings.Count(buf.String(), "\n")).To(Equal(2))
	})
})

var _ = Describe("WriteCSV", func() {
	It("should include error columns", func() {
		s := integrators.Integrate(dynamo.Params{X0: 0, Y0: 1, StepLength: 0.1, StepCount: 3}, dynamo.Exponential(2))
		var buf bytes.Buffer

		Expect(console.WriteCSV(&buf, s)).To(Succeed())

		records, err := csv.NewReader(&buf).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(HaveLen(4))
		Expect(records[0]).To(Equal([]string{"x", "euler", "midpoint", "exact", "euler_error", "midpoint_error"}))
		Expect(records[1][1]).To(Equal("1.2000000000"))

		eulerErr, err := strconv.ParseFloat(records[1][4], 64)
		Expect(err).ToNot(HaveOccurred())
		Expect(eulerErr).To(BeNumerically("~", 0.0214027582, 1e-8))
	})
})

var _ = Describe("WriteConvergence", func() {
	It("should print a row per scheme and level", func() {
		rows, err := integrators.Convergence(dynamo.Params{X0: 0, Y0: 1, StepLength: 0.1, StepCount: 10}, dynamo.Exponential(2), []string{"euler", "midpoint"}, 2)
		Expect(err).ToNot(HaveOccurred())

		var buf bytes.Buffer
		Expect(console.WriteConvergence(&buf, "y' = 2y", rows)).To(Succeed())

		out := buf.String()
		Expect(out).To(ContainSubstring("y' = 2y"))
		Expect(out).To(ContainSubstring("SCHEME"))
		Expect(strings.Count(out, "euler")).To(Equal(2))
		Expect(strings.Count(out, "midpoint")).To(Equal(2))
	})
})

var _ = Describe("Banner", func() {
	It("should name the equation", func() {
		var buf bytes.Buffer
		console.Banner(&buf, "y' = 2y")
		Expect(buf.String()).To(ContainSubstring("Solving the equation y' = 2y using Euler's method and Midpoint method."))
	})
})
