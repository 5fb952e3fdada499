package valet_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"valet/internal/average"
	"valet/internal/domain"
	"valet/internal/request"
	"valet/internal/schema"
	"valet/internal/valet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const defaultSeriesName = "FXUSDCAD"

func observationsRequest(series, format string) request.Builder {
	return request.New().
		WithBaseURL(baseURL).
		WithMethod(domain.MethodGet).
		WithEndpoint(fmt.Sprintf("/valet/observations/%s/%s", series, format)).
		WithHeaders(map[string]string{})
}

func dispatch(b request.Builder) *domain.Envelope {
	req, err := b.Build()
	Expect(err).NotTo(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return apiClient.Dispatch(ctx, req)
}

var _ = Describe("Observations API", func() {
	It("returns 200 for a known series", func() {
		env := dispatch(observationsRequest(defaultSeriesName, "json"))

		Expect(env).NotTo(BeNil())
		Expect(env.Status).To(Equal(http.StatusOK))
	})

	It("returns 400 for an unsupported format", func() {
		env := dispatch(observationsRequest(defaultSeriesName, "jsonxx"))

		Expect(env).NotTo(BeNil())
		Expect(env.Status).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown series", func() {
		env := dispatch(observationsRequest("FXUSDCADXX", "json"))

		Expect(env).NotTo(BeNil())
		Expect(env.Status).To(Equal(http.StatusNotFound))
	})

	DescribeTable("rejects an invalid recent parameter",
		func(recent any) {
			env := dispatch(observationsRequest(defaultSeriesName, "json").WithParam("recent", recent))

			Expect(env).NotTo(BeNil())
			Expect(env.Status).To(Equal(http.StatusBadRequest))

			payload, err := valet.DecodeError(env)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload.Message).To(ContainSubstring("Bad recent observations request parameters"))
		},
		Entry("non numeric", "abc"),
		Entry("negative", -1),
		Entry("zero", 0),
	)

	Describe("average conversion rate", func() {
		const weeks = 10

		var calc *average.Calculator

		BeforeEach(func() {
			calc = average.NewCalculator(client, logger)
		})

		DescribeTable("over the most recent weeks",
			func(from, to string) {
				avg, err := calc.Average(context.Background(), weeks, from, to)
				if live && average.IsUpstreamStatus(err, http.StatusNotFound) {
					Skip(fmt.Sprintf("Valet does not publish FX%s%s", from, to))
				}

				Expect(err).NotTo(HaveOccurred())
				Expect(avg).To(BeNumerically(">", 0))
				Expect(calc.AverageOrZero(context.Background(), weeks, from, to)).To(BeNumerically("~", avg, 1e-9))
			},
			Entry("CAD to AUD", "CAD", "AUD"),
			Entry("USD to CAD", "USD", "CAD"),
			Entry("USD to EUR", "USD", "EUR"),
		)

		It("falls back to zero for identical currencies", func() {
			Expect(calc.AverageOrZero(context.Background(), weeks, "USD", "USD")).To(BeZero())
		})
	})

	It("returns a payload matching the observations schema", func() {
		validator, err := schema.NewObservations(logger)
		Expect(err).NotTo(HaveOccurred())

		env := dispatch(observationsRequest(defaultSeriesName, "json"))

		Expect(env).NotTo(BeNil())
		Expect(env.Status).To(Equal(http.StatusOK))
		Expect(validator.ValidateErr(env.Data)).To(Succeed())
		Expect(validator.Validate(env.Data)).To(BeTrue())
	})
})
