package docstore

import (
	"context"

	"github.com/google/uuid"
)

// Seed loads the starter documents into the store so a fresh instance
// has something to retrieve against before the user uploads anything.
func Seed(ctx context.Context, store Store) error {
	samples := []Document{
		{
			Title: "Employee Remote Work Policy (Global)",
			Type:  TypePDF,
			Content: `1. Purpose: This policy defines the guidelines for remote work eligibility for all employees globally.
2. Eligibility: Employees in "Hybrid" or "Remote-First" designated roles may work from home up to 4 days a week.
3. Core Hours: Regardless of location, employees must be available during core collaboration hours (10:00 AM - 3:00 PM local time).
4. Equipment: The company provides a one-time stipend of $1,000 for home office setup (monitor, chair, desk).`,
			UploadDate: "2024-02-10",
			Active:     true,
		},
		{
			Title: "Project Apollo - Product Specifications",
			Type:  TypeMarkdown,
			Content: `## Project Apollo Overview
Project Apollo is our next-gen renewable energy storage solution.
### Technical Specs
- **Capacity**: 50kWh per unit (modular up to 1MWh)
- **Chemistry**: Lithium Iron Phosphate (LFP)
- **Warranty**: 15 years or 8,000 cycles
- **Inverter**: Integrated 10kW hybrid inverter
### Target Market
Primary focus is residential solar users in California and Australia. Launch date is Q3 2025.`,
			UploadDate: "2024-03-05",
			Active:     true,
		},
		{
			Title: "Customer Support Playbook - Refund Process",
			Type:  TypeText,
			Content: `Standard Operating Procedure for Refunds:
1. Verify Purchase: Check Order ID in the CRM.
2. Eligibility Window: Refunds are only processed within 30 days of delivery.
3. Condition: Item must be unopened. If opened, a 15% restocking fee applies.
4. Approval: Refunds > $500 require Manager approval.
5. Timeline: Process refunds within 3-5 business days back to the original payment method.`,
			UploadDate: "2024-01-20",
			Active:     true,
		},
	}

	for _, doc := range samples {
		doc.ID = uuid.NewString()
		if err := store.Add(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
