package agent

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/parish"
	"github.com/CatholicOS/caritas-ai/internal/registration"
	"github.com/CatholicOS/caritas-ai/internal/reports"
)

// Toolbox holds the services the agent tools dispatch to.
type Toolbox struct {
	Events        OpportunitySearcher
	Parishes      ParishFinder
	Registrations Registrar
	Analytics     AnalyticsProvider
}

type OpportunitySearcher interface {
	SearchOpportunities(ctx context.Context, f event.SearchFilter) []event.Opportunity
}

type ParishFinder interface {
	FindNearby(ctx context.Context, city string, services []string, limit int) []parish.Parish
}

type Registrar interface {
	Register(ctx context.Context, req *registration.RegisterRequest) (*registration.RegisterResult, error)
}

type AnalyticsProvider interface {
	ParishAnalytics(ctx context.Context, name string) (*reports.ParishAnalytics, error)
}

// BuildTools returns the four tools the agent can call. Every tool
// catches its own failures and reports them in the Error field so the
// model always gets a well-formed observation to relay.
func (tb *Toolbox) BuildTools() []tool.BaseTool {
	return []tool.BaseTool{
		tb.searchOpportunitiesTool(),
		tb.findParishesTool(),
		tb.registerVolunteerTool(),
		tb.parishAnalyticsTool(),
	}
}

// ===================================
// 🔍 Search Volunteer Opportunities
// ===================================

type searchOpportunitiesInput struct {
	Location  string   `json:"location"`
	Skills    []string `json:"skills,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

type opportunityResult struct {
	EventID        uint     `json:"event_id"`
	Title          string   `json:"title"`
	ParishName     string   `json:"parish_name"`
	EventDate      string   `json:"event_date"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	SkillsNeeded   []string `json:"skills_needed,omitempty"`
	SpotsAvailable *int     `json:"spots_available,omitempty"`
}

type searchOpportunitiesOutput struct {
	Count         int                 `json:"count"`
	Opportunities []opportunityResult `json:"opportunities"`
	Message       string              `json:"message,omitempty"`
}

func (tb *Toolbox) searchOpportunitiesTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "search_volunteer_opportunities",
			Desc: "Search for volunteer opportunities near a location. Always show the event_id of each result to the user so they can register later.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"location": {
					Type:     "string",
					Desc:     "City, state, or ZIP code to search near. Example: Baltimore",
					Required: true,
				},
				"skills": {
					Type:     "array",
					ElemInfo: &schema.ParameterInfo{Type: "string"},
					Desc:     "Optional skills the volunteer has, e.g. cooking, tutoring, sorting",
				},
				"start_date": {
					Type: "string",
					Desc: "Optional earliest event date, format YYYY-MM-DD",
				},
				"end_date": {
					Type: "string",
					Desc: "Optional latest event date, format YYYY-MM-DD",
				},
				"limit": {
					Type: "number",
					Desc: "Maximum number of results (default 5)",
				},
			}),
		},
		func(ctx context.Context, in *searchOpportunitiesInput) (*searchOpportunitiesOutput, error) {
			start, end, err := event.ParseDateRange(in.StartDate, in.EndDate)
			if err != nil {
				return &searchOpportunitiesOutput{Message: "Invalid date: use YYYY-MM-DD format."}, nil
			}
			limit := in.Limit
			if limit <= 0 {
				limit = 5
			}

			opps := tb.Events.SearchOpportunities(ctx, event.SearchFilter{
				Location:  in.Location,
				Skills:    in.Skills,
				StartDate: start,
				EndDate:   end,
				Limit:     limit,
			})

			out := &searchOpportunitiesOutput{Count: len(opps), Opportunities: []opportunityResult{}}
			if len(opps) == 0 {
				out.Message = "No volunteer opportunities found for " + in.Location + " right now. Suggest expanding the search or checking back later."
				return out, nil
			}
			for _, o := range opps {
				out.Opportunities = append(out.Opportunities, opportunityResult{
					EventID:        o.ID,
					Title:          o.Title,
					ParishName:     o.ParishName,
					EventDate:      o.EventDate.Format("Monday, January 2, 2006"),
					Address:        o.ParishAddress,
					City:           o.ParishCity,
					SkillsNeeded:   o.SkillsNeeded,
					SpotsAvailable: o.SpotsAvailable(),
				})
			}
			return out, nil
		},
	)
}

// ===================================
// 🔍 Find Nearby Parishes
// ===================================

type findParishesInput struct {
	Location string `json:"location"`
	Need     string `json:"need,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type parishResult struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	ZipCode  string   `json:"zip_code,omitempty"`
	Services []string `json:"services,omitempty"`
	Email    string   `json:"email,omitempty"`
}

type findParishesOutput struct {
	Count    int            `json:"count"`
	Parishes []parishResult `json:"parishes"`
	Message  string         `json:"message,omitempty"`
}

func (tb *Toolbox) findParishesTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "find_nearby_parishes",
			Desc: "Find Catholic parishes and charities near a location, optionally filtered by the kind of help needed such as food pantry or counseling.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"location": {
					Type:     "string",
					Desc:     "City to search in. Example: Baltimore",
					Required: true,
				},
				"need": {
					Type: "string",
					Desc: "Optional type of assistance needed, e.g. food pantry, soup kitchen, counseling",
				},
				"limit": {
					Type: "number",
					Desc: "Maximum number of results (default 5)",
				},
			}),
		},
		func(ctx context.Context, in *findParishesInput) (*findParishesOutput, error) {
			limit := in.Limit
			if limit <= 0 {
				limit = 5
			}

			parishes := tb.Parishes.FindNearby(ctx, in.Location, servicesForNeed(in.Need), limit)

			out := &findParishesOutput{Count: len(parishes), Parishes: []parishResult{}}
			if len(parishes) == 0 {
				out.Message = "No parishes found in " + in.Location + ". Suggest trying a nearby city."
				return out, nil
			}
			for _, p := range parishes {
				email := p.Email
				if email == "" {
					email = "Contact via website"
				}
				out.Parishes = append(out.Parishes, parishResult{
					Name:     p.Name,
					Address:  p.Address,
					City:     p.City,
					State:    p.State,
					ZipCode:  p.ZipCode,
					Services: p.Services,
					Email:    email,
				})
			}
			out.Message = "All services are confidential and available to everyone."
			return out, nil
		},
	)
}

// servicesForNeed maps a stated need onto the service tags parishes
// are recorded with.
func servicesForNeed(need string) []string {
	need = strings.ToLower(strings.TrimSpace(need))
	switch {
	case need == "":
		return nil
	case strings.Contains(need, "food"):
		return []string{"food pantry", "soup kitchen"}
	case strings.Contains(need, "counsel"):
		return []string{"counseling"}
	default:
		return []string{need}
	}
}

// ===================================
// 🔄 Register Volunteer
// ===================================

type registerVolunteerInput struct {
	EventID        uint   `json:"event_id"`
	VolunteerName  string `json:"volunteer_name"`
	VolunteerEmail string `json:"volunteer_email"`
}

type registerVolunteerOutput struct {
	Success        bool   `json:"success"`
	RegistrationID uint   `json:"registration_id,omitempty"`
	EventTitle     string `json:"event_title,omitempty"`
	EventDate      string `json:"event_date,omitempty"`
	ParishName     string `json:"parish_name,omitempty"`
	ConfirmationTo string `json:"confirmation_sent_to,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (tb *Toolbox) registerVolunteerTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "register_volunteer",
			Desc: "Register a volunteer for an event. Use the event_id from an earlier search result and the volunteer's email from the conversation. The name is only needed for first-time volunteers; ask for it if registration fails without one.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"event_id": {
					Type:     "number",
					Desc:     "The numeric event ID from search results",
					Required: true,
				},
				"volunteer_name": {
					Type: "string",
					Desc: "The volunteer's full name, required only when the email is not registered yet",
				},
				"volunteer_email": {
					Type:     "string",
					Desc:     "The volunteer's email address",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *registerVolunteerInput) (*registerVolunteerOutput, error) {
			if in.EventID == 0 {
				return &registerVolunteerOutput{Error: "A valid event ID is required."}, nil
			}
			if !strings.Contains(in.VolunteerEmail, "@") {
				return &registerVolunteerOutput{Error: "Please provide a valid email address."}, nil
			}

			result, err := tb.Registrations.Register(ctx, &registration.RegisterRequest{
				EventID:        in.EventID,
				VolunteerName:  in.VolunteerName,
				VolunteerEmail: in.VolunteerEmail,
			})
			if err != nil {
				return &registerVolunteerOutput{Error: "Registration failed: " + err.Error()}, nil
			}

			return &registerVolunteerOutput{
				Success:        true,
				RegistrationID: result.RegistrationID,
				EventTitle:     result.EventTitle,
				EventDate:      result.EventDate.Format("Monday, January 2, 2006"),
				ParishName:     result.ParishName,
				ConfirmationTo: strings.ToLower(strings.TrimSpace(in.VolunteerEmail)),
			}, nil
		},
	)
}

// ===================================
// 📊 Parish Analytics
// ===================================

type parishAnalyticsInput struct {
	ParishName string `json:"parish_name"`
}

type parishAnalyticsOutput struct {
	ParishName          string   `json:"parish_name,omitempty"`
	City                string   `json:"city,omitempty"`
	ServicesOffered     []string `json:"services_offered,omitempty"`
	TotalEvents         int64    `json:"total_events"`
	UpcomingEvents      int64    `json:"upcoming_events"`
	PastEvents          int64    `json:"past_events"`
	TotalRegistrations  int64    `json:"total_registrations"`
	EventsThisMonth     int64    `json:"events_this_month"`
	VolunteersThisMonth int64    `json:"volunteers_this_month"`
	Error               string   `json:"error,omitempty"`
}

func (tb *Toolbox) parishAnalyticsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "get_parish_analytics",
			Desc: "Get volunteer and event statistics for a parish. Input is the parish name, partial matches work.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"parish_name": {
					Type:     "string",
					Desc:     "The parish name to look up, e.g. St. Mary's",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *parishAnalyticsInput) (*parishAnalyticsOutput, error) {
			analytics, err := tb.Analytics.ParishAnalytics(ctx, in.ParishName)
			if err != nil {
				return &parishAnalyticsOutput{Error: "Couldn't find parish: " + err.Error()}, nil
			}
			return &parishAnalyticsOutput{
				ParishName:          analytics.ParishName,
				City:                analytics.City,
				ServicesOffered:     analytics.ServicesOffered,
				TotalEvents:         analytics.TotalEvents,
				UpcomingEvents:      analytics.UpcomingEvents,
				PastEvents:          analytics.PastEvents,
				TotalRegistrations:  analytics.TotalRegistrations,
				EventsThisMonth:     analytics.EventsThisMonth,
				VolunteersThisMonth: analytics.VolunteersThisMonth,
			}, nil
		},
	)
}
