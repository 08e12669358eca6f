package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ketandv/sipfolio"
	"github.com/ketandv/sipfolio/mfapi"
	"github.com/ketandv/sipfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is an Indian mutual fund investor running a monthly SIP. He is here primarily to
			decide which scheme to invest in and how much to invest this month.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. When the user names a fund loosely, have the Analyst search the scheme
			listing first to pin down the scheme code.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounding answers in current market news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of the Indian mutual fund industry, fund houses and markets,
		and the latest news about funds and the companies they hold.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Indian mutual funds and markets. You can search and find about
			anything related to fund houses, schemes, sectors and market events. You leverage
			Google Search to ground your assertions in a solid truth, and you know how to relate
			the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert with hands on the NAV feed: it can search
// schemes, backtest SIP strategies and plan the month's contribution.
func NewAnalyst(client *mfapi.Client) *Expert {
	lib := []Function{
		searchSchemes(client),
		backtest(client),
		monthlyPlan(client),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the quantitative Analyst. He has direct access to the NAV history
		of every Indian mutual fund scheme. He can search the scheme listing, backtest fixed and
		enhanced SIP strategies over real history, and recommend this month's contribution.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst of Indian mutual funds. You know how to use the
				Tools to search schemes by name, backtest SIP strategies over a scheme's real
				NAV history, and recommend this month's contribution for a scheme.

				Scheme codes are numeric. When a teammate gives you a fund name instead of a
				code, search the listing first. Report figures from the tools as they are, in
				their original markdown tables.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// fail packs an error into a function response.
func failResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// schemeArg reads the numeric scheme code argument.
func schemeArg(args map[string]any) (int, error) {
	v, ok := args["scheme_code"]
	if !ok {
		return 0, fmt.Errorf("argument 'scheme_code' is required")
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument 'scheme_code' is not a number but %T", v)
	}
	return int(f), nil
}

// amountArg reads the optional base amount argument, in INR.
func amountArg(args map[string]any) (float64, error) {
	v, ok := args["amount"]
	if !ok {
		return 5000, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument 'amount' is not a number but %T", v)
	}
	if f <= 0 {
		return 0, fmt.Errorf("argument 'amount' must be positive, got %v", f)
	}
	return f, nil
}

func searchSchemes(client *mfapi.Client) *Func {
	const name = "SearchSchemes"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Search the mutual fund scheme listing by case-insensitive name match. Returns matching scheme codes and names.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"keyword": {
						Type:        genai.TypeString,
						Description: "Part of the scheme name, e.g. a fund house or plan name.",
					},
				},
				Required: []string{"keyword"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One scheme per line: the numeric code and the full scheme name.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			keyword, ok := args["keyword"].(string)
			if !ok {
				return failResponse(id, name, fmt.Errorf("argument 'keyword' is not a string"))
			}
			matches, err := client.Search(keyword)
			if err != nil {
				return failResponse(id, name, err)
			}
			if len(matches) > 25 {
				matches = matches[:25]
			}
			var b strings.Builder
			for _, s := range matches {
				fmt.Fprintf(&b, "%d\t%s\n", s.Code, s.Name)
			}
			return okResponse(id, name, b.String())
		},
	}
}

func backtest(client *mfapi.Client) *Func {
	const name = "Backtest"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Backtest compares a fixed monthly SIP with the enhanced strategy
			(which invests more after NAV drops) over the scheme's full real history.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scheme_code": {
						Type:        genai.TypeNumber,
						Description: "The numeric scheme code, from SearchSchemes.",
					},
					"amount": {
						Type:        genai.TypeNumber,
						Description: "Base monthly SIP amount in INR. Defaults to 5000.",
					},
				},
				Required: []string{"scheme_code"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report comparing both strategies with rolling returns.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			code, err := schemeArg(args)
			if err != nil {
				return failResponse(id, name, err)
			}
			amount, err := amountArg(args)
			if err != nil {
				return failResponse(id, name, err)
			}
			details, err := client.Details(code)
			if err != nil {
				return failResponse(id, name, err)
			}
			s, err := sipfolio.NewSeries(details.Data, 0)
			if err != nil {
				return failResponse(id, name, err)
			}
			cmp, err := sipfolio.Compare(s, sipfolio.INR(amount), sipfolio.DefaultWindow)
			if err != nil {
				return failResponse(id, name, err)
			}
			return okResponse(id, name, renderer.ComparisonMarkdown(details.Meta.SchemeName, cmp))
		},
	}
}

func monthlyPlan(client *mfapi.Client) *Func {
	const name = "MonthlyPlan"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `MonthlyPlan recommends how much to invest in the scheme this month,
			scaling the base SIP amount with the latest NAV movement.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scheme_code": {
						Type:        genai.TypeNumber,
						Description: "The numeric scheme code, from SearchSchemes.",
					},
					"amount": {
						Type:        genai.TypeNumber,
						Description: "Base monthly SIP amount in INR. Defaults to 5000.",
					},
				},
				Required: []string{"scheme_code"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with the recommended amount and its rationale.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			code, err := schemeArg(args)
			if err != nil {
				return failResponse(id, name, err)
			}
			amount, err := amountArg(args)
			if err != nil {
				return failResponse(id, name, err)
			}
			details, err := client.Details(code)
			if err != nil {
				return failResponse(id, name, err)
			}
			s, err := sipfolio.NewSeries(details.Data, 30)
			if err != nil {
				return failResponse(id, name, err)
			}
			plan, err := sipfolio.MonthlyPlan(s, sipfolio.INR(amount))
			if err != nil {
				return failResponse(id, name, err)
			}
			return okResponse(id, name, renderer.PlanMarkdown(details.Meta.SchemeName, plan))
		},
	}
}
