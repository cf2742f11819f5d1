package catalog

// Default returns the compiled-in catalog. Each call builds a fresh value so
// independent engines never share state.
func Default() *Catalog {
	return Must(New(defaultTemplates()))
}

func defaultTemplates() map[CategoryID][]WorkflowTemplate {
	return map[CategoryID][]WorkflowTemplate{
		Marketing: {
			{
				Key:   "mkt-launch-campaign",
				Title: "Launch {campaign} campaign on {channel}",
				Keys:  []string{"campaign", "channel", "audience"},
				FollowUps: []FollowUp{
					{Title: "Review {campaign} performance metrics on {channel}", Category: Marketing},
					{Title: "Draft follow-up email for {audience}", Category: Marketing},
					{Title: "Share {campaign} leads with sales team", Category: Sales},
					{Title: "Request budget approval for {campaign}", Category: Finance, Priority: High},
				},
			},
			{
				Key:   "mkt-blog-post",
				Title: "Write blog post about {product} for {audience}",
				Keys:  []string{"product", "audience"},
				FollowUps: []FollowUp{
					{Title: "Create social posts promoting {product} blog post", Category: Marketing},
					{Title: "Optimize {product} blog post for search", Category: Marketing, Priority: Low},
					{Title: "Ask product team to review {product} claims", Category: Product},
				},
			},
			{
				Key:   "mkt-competitor-analysis",
				Title: "Analyze {competitor} messaging for Q{quarter}",
				Keys:  []string{"competitor", "quarter"},
				FollowUps: []FollowUp{
					{Title: "Update positioning against {competitor}", Category: Marketing},
					{Title: "Brief sales on {competitor} talking points", Category: Sales},
					{Title: "Share {competitor} feature gaps with product", Category: Product},
				},
			},
			{
				Key:   "mkt-event-booth",
				Title: "Plan booth for {event}",
				Keys:  []string{"event", "region"},
				FollowUps: []FollowUp{
					{Title: "Order booth materials for {event}", Category: Marketing},
					{Title: "Book travel to {event} in {region}", Category: Operations},
					{Title: "Schedule {event} meetings with prospects", Category: Sales},
					{Title: "Submit {event} sponsorship invoice", Category: Finance},
				},
			},
		},
		Sales: {
			{
				Key:   "sales-proposal",
				Title: "Prepare proposal for {company}",
				Keys:  []string{"company", "product"},
				FollowUps: []FollowUp{
					{Title: "Schedule proposal review call with {company}", Category: Sales},
					{Title: "Send contract to {company}", Category: Sales, Priority: High},
					{Title: "Create invoice for {company}", Category: Finance},
					{Title: "Set up {product} onboarding for {company}", Category: Operations},
				},
			},
			{
				Key:   "sales-discovery-call",
				Title: "Run discovery call with {company}",
				Keys:  []string{"company", "segment"},
				FollowUps: []FollowUp{
					{Title: "Log discovery notes for {company} in CRM", Category: Sales},
					{Title: "Qualify {company} for {segment} pipeline", Category: Sales},
					{Title: "Share {company} requirements with product team", Category: Product},
				},
			},
			{
				Key:   "sales-renewal",
				Title: "Negotiate renewal with {company} for Q{quarter}",
				Keys:  []string{"company", "quarter"},
				FollowUps: []FollowUp{
					{Title: "Prepare renewal pricing for {company}", Category: Sales},
					{Title: "Confirm Q{quarter} renewal terms with finance", Category: Finance, Priority: High},
					{Title: "Review {company} support history before renewal", Category: Support},
				},
			},
			{
				Key:   "sales-pipeline-review",
				Title: "Review {region} pipeline for Q{quarter}",
				Keys:  []string{"region", "quarter"},
				FollowUps: []FollowUp{
					{Title: "Update Q{quarter} forecast for {region}", Category: Sales},
					{Title: "Flag stalled {region} deals to leadership", Category: Sales},
					{Title: "Send Q{quarter} {region} forecast to finance", Category: Finance},
				},
			},
		},
		Operations: {
			{
				Key:   "ops-vendor-renewal",
				Title: "Evaluate {vendor} contract renewal",
				Keys:  []string{"vendor"},
				FollowUps: []FollowUp{
					{Title: "Collect usage data for {vendor} review", Category: Operations},
					{Title: "Negotiate {vendor} pricing", Category: Operations},
					{Title: "Route {vendor} contract to finance for approval", Category: Finance},
					{Title: "Confirm {vendor} security review with engineering", Category: Engineering},
				},
			},
			{
				Key:   "ops-process-docs",
				Title: "Document {team} onboarding process",
				Keys:  []string{"team", "tool"},
				FollowUps: []FollowUp{
					{Title: "Review {team} onboarding document with stakeholders", Category: Operations},
					{Title: "Automate {team} onboarding checklist in {tool}", Category: Engineering},
					{Title: "Share {team} onboarding guide with HR", Category: HR},
				},
			},
			{
				Key:   "ops-inventory-audit",
				Title: "Audit {region} office equipment inventory",
				Keys:  []string{"region", "batchSize"},
				FollowUps: []FollowUp{
					{Title: "Order {batchSize} replacement items for {region} office", Category: Operations},
					{Title: "Submit {region} equipment purchase order", Category: Finance},
					{Title: "Schedule {region} equipment recycling", Category: Operations, Priority: Low},
				},
			},
			{
				Key:   "ops-team-offsite",
				Title: "Organize {team} offsite in {region}",
				Keys:  []string{"team", "region", "month"},
				FollowUps: []FollowUp{
					{Title: "Book venue for {team} offsite in {month}", Category: Operations},
					{Title: "Collect dietary needs for {team} offsite", Category: HR},
					{Title: "Approve {team} offsite budget", Category: Finance},
				},
			},
		},
		HR: {
			{
				Key:   "hr-open-requisition",
				Title: "Open requisition for {role}",
				Keys:  []string{"role", "team"},
				FollowUps: []FollowUp{
					{Title: "Write job description for {role}", Category: HR},
					{Title: "Schedule {role} interview loop with {team}", Category: HR},
					{Title: "Approve {role} compensation band", Category: Finance, Priority: High},
					{Title: "Prepare {role} technical assessment", Category: Engineering},
				},
			},
			{
				Key:   "hr-onboarding",
				Title: "Prepare onboarding for new {role}",
				Keys:  []string{"role", "tool"},
				FollowUps: []FollowUp{
					{Title: "Provision {tool} account for new {role}", Category: Operations},
					{Title: "Assign onboarding buddy for new {role}", Category: HR},
					{Title: "Schedule 30-day check-in with new {role}", Category: HR, Priority: Low},
				},
			},
			{
				Key:   "hr-performance-review",
				Title: "Kick off Q{quarter} performance reviews for {team}",
				Keys:  []string{"quarter", "team"},
				FollowUps: []FollowUp{
					{Title: "Collect Q{quarter} peer feedback for {team}", Category: HR},
					{Title: "Calibrate Q{quarter} ratings for {team}", Category: HR, Priority: High},
					{Title: "Model Q{quarter} merit budget for {team}", Category: Finance},
				},
			},
			{
				Key:   "hr-policy-update",
				Title: "Update {policy} policy",
				Keys:  []string{"policy"},
				FollowUps: []FollowUp{
					{Title: "Review {policy} policy changes with leadership", Category: HR},
					{Title: "Announce updated {policy} policy to all staff", Category: HR},
					{Title: "Train support team on {policy} policy", Category: Support},
				},
			},
		},
		Finance: {
			{
				Key:   "fin-month-close",
				Title: "Close {month} books",
				Keys:  []string{"month", "report"},
				FollowUps: []FollowUp{
					{Title: "Reconcile {month} bank statements", Category: Finance, Priority: High},
					{Title: "Prepare {month} {report}", Category: Finance},
					{Title: "Send {month} {report} to leadership", Category: Finance},
				},
			},
			{
				Key:   "fin-invoice-batch",
				Title: "Process invoice batch of {batchSize} for {vendor}",
				Keys:  []string{"batchSize", "vendor"},
				FollowUps: []FollowUp{
					{Title: "Resolve disputed {vendor} invoices", Category: Finance},
					{Title: "Schedule {vendor} payment run", Category: Finance},
					{Title: "Confirm {vendor} delivery with operations", Category: Operations},
				},
			},
			{
				Key:   "fin-quarterly-budget",
				Title: "Draft Q{quarter} budget for {team}",
				Keys:  []string{"quarter", "team"},
				FollowUps: []FollowUp{
					{Title: "Review Q{quarter} {team} budget with department head", Category: Finance},
					{Title: "Align Q{quarter} {team} hiring plan with HR", Category: HR},
					{Title: "Publish Q{quarter} budget guidance", Category: Finance},
				},
			},
			{
				Key:   "fin-expense-audit",
				Title: "Audit {team} expense reports",
				Keys:  []string{"team", "percent"},
				FollowUps: []FollowUp{
					{Title: "Flag {team} expenses exceeding policy by {percent}%", Category: Finance},
					{Title: "Update expense policy for {team}", Category: HR},
					{Title: "Configure expense approval rules for {team}", Category: Operations},
				},
			},
		},
		Product: {
			{
				Key:   "prod-feature-spec",
				Title: "Write spec for {feature}",
				Keys:  []string{"feature", "product"},
				FollowUps: []FollowUp{
					{Title: "Review {feature} spec with engineering", Category: Product},
					{Title: "Estimate {feature} implementation effort", Category: Engineering},
					{Title: "Draft {feature} launch messaging", Category: Marketing},
					{Title: "Validate {feature} with design partners", Category: Product},
				},
			},
			{
				Key:   "prod-customer-research",
				Title: "Interview {segment} customers about {product}",
				Keys:  []string{"segment", "product"},
				FollowUps: []FollowUp{
					{Title: "Synthesize {segment} interview findings", Category: Product},
					{Title: "Prioritize {product} backlog from {segment} feedback", Category: Product},
					{Title: "Share {segment} insights with marketing", Category: Marketing},
				},
			},
			{
				Key:   "prod-roadmap",
				Title: "Update {product} roadmap for Q{quarter}",
				Keys:  []string{"product", "quarter"},
				FollowUps: []FollowUp{
					{Title: "Present Q{quarter} {product} roadmap to leadership", Category: Product, Priority: High},
					{Title: "Communicate Q{quarter} {product} roadmap to sales", Category: Sales},
					{Title: "Plan Q{quarter} {product} sprint capacity", Category: Engineering},
				},
			},
			{
				Key:   "prod-metric-analysis",
				Title: "Analyze {metric} trend for {product}",
				Keys:  []string{"metric", "product"},
				FollowUps: []FollowUp{
					{Title: "Set {metric} target for {product}", Category: Product},
					{Title: "Add {metric} dashboard for {product}", Category: Engineering},
					{Title: "Report {product} {metric} impact to finance", Category: Finance},
				},
			},
		},
		Engineering: {
			{
				Key:   "eng-bug-fix",
				Title: "Fix bug #{ticketNumber} in {service}",
				Keys:  []string{"ticketNumber", "service"},
				FollowUps: []FollowUp{
					{Title: "Write regression test for bug #{ticketNumber}", Category: Engineering},
					{Title: "Deploy fix for #{ticketNumber} to {service}", Category: Engineering, Priority: High},
					{Title: "Notify support that #{ticketNumber} is fixed", Category: Support},
					{Title: "Write postmortem for #{ticketNumber}", Category: Engineering, Priority: Low},
				},
			},
			{
				Key:   "eng-feature-build",
				Title: "Implement {feature} in {service}",
				Keys:  []string{"feature", "service", "sprint"},
				FollowUps: []FollowUp{
					{Title: "Code review {feature} changes", Category: Engineering},
					{Title: "Add {feature} to sprint {sprint} demo", Category: Product},
					{Title: "Update {service} docs for {feature}", Category: Engineering},
					{Title: "Write release notes for {feature}", Category: Marketing},
				},
			},
			{
				Key:   "eng-system-upgrade",
				Title: "Upgrade {system} to v{version}",
				Keys:  []string{"system", "version"},
				FollowUps: []FollowUp{
					{Title: "Test {system} v{version} in staging", Category: Engineering},
					{Title: "Schedule {system} v{version} maintenance window", Category: Operations},
					{Title: "Announce {system} v{version} downtime to customers", Category: Support},
				},
			},
			{
				Key:   "eng-latency-incident",
				Title: "Investigate latency spike in {service}",
				Keys:  []string{"service", "metric"},
				FollowUps: []FollowUp{
					{Title: "Add {metric} alerting for {service}", Category: Engineering},
					{Title: "Share {service} incident summary with support", Category: Support, Priority: Critical},
					{Title: "Review {service} capacity plan", Category: Engineering},
				},
			},
		},
		Support: {
			{
				Key:   "sup-resolve-ticket",
				Title: "Resolve ticket #{ticketNumber} for {company}",
				Keys:  []string{"ticketNumber", "company"},
				FollowUps: []FollowUp{
					{Title: "Follow up with {company} on ticket #{ticketNumber}", Category: Support},
					{Title: "Escalate ticket #{ticketNumber} to engineering", Category: Engineering, Priority: High},
					{Title: "Add ticket #{ticketNumber} resolution to knowledge base", Category: Support, Priority: Low},
					{Title: "Flag {company} as upsell opportunity", Category: Sales},
				},
			},
			{
				Key:   "sup-help-article",
				Title: "Write help article for {feature}",
				Keys:  []string{"feature", "product"},
				FollowUps: []FollowUp{
					{Title: "Review {feature} help article with product", Category: Product},
					{Title: "Translate {feature} help article", Category: Support},
					{Title: "Link {feature} article in {product} app", Category: Engineering},
				},
			},
			{
				Key:   "sup-csat-review",
				Title: "Review CSAT survey results for {month}",
				Keys:  []string{"month", "percent"},
				FollowUps: []FollowUp{
					{Title: "Contact detractors from {month} survey", Category: Support},
					{Title: "Share {month} CSAT themes with product", Category: Product},
					{Title: "Set CSAT goal to improve by {percent}%", Category: Support},
				},
			},
			{
				Key:   "sup-release-training",
				Title: "Train support team on {product} release",
				Keys:  []string{"product", "version"},
				FollowUps: []FollowUp{
					{Title: "Create {product} v{version} troubleshooting guide", Category: Support},
					{Title: "Record {product} v{version} walkthrough video", Category: Marketing},
					{Title: "Collect {product} v{version} known issues from engineering", Category: Engineering},
				},
			},
		},
	}
}
