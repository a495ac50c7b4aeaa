package agent

import (
	"google.golang.org/genai"

	"github.com/etnz/tearsheet/docs"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert in charge of the conversation. The
// rendered tear sheet report is part of its system instruction so every
// answer can refer to the actual numbers.
func newFacilitator(report string, experts ...*Expert) *Expert {
	metricsDoc, _ := docs.GetTopic("metrics")
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio performance analyst in charge of the conversation.
			The user ran a tear sheet over their strategy's returns and wants to
			understand it. Explain metrics in plain language, point out what stands
			out (good and bad), and be honest about weak numbers.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.
			Ask the Analyst whenever the user's question needs market news or any
			information beyond the report below.

			Here is how every metric in the report is computed:

			` + metricsDoc + `

			Here is the user's tear sheet:

			` + report}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns a search-grounded market analyst expert.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products and institutions,
		and of the latest news about funds, companies and markets.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything
			related to financial institutions, companies, markets and funds.
			You leverage Google Search to ground your assertions, you can get
			the latest news, and you know how to relate them to the question.`}}},
		},
	}
}
