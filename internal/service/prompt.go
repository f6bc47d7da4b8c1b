package service

import (
	"fmt"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

const promptFormat = `You are a family activity recommendation assistant. A family is looking for activities in their area with the following criteria:

**Location:** %s
**Children's Ages:** %s
**Date & Time:** %s
**Maximum Distance:** %d miles from %s
**Additional Preferences:** %s

Using the web_search tool, find real, current, timely local activities and events that match these criteria. Focus on family-friendly activities that are appropriate for the children's ages provided.

Please return the **top 5 most relevant activities** ranked by how well they match the family's needs.

For each activity, provide the following information:

1. **Name** - The activity or event name
2. **Time** - Date and time (e.g., "Saturday, February 15, 10:00 AM - 2:00 PM")
3. **Description** - A brief, engaging description (2-3 sentences) highlighting what makes it great for families
4. **Location** - Venue name and/or address
5. **Distance** - Approximate distance from %s in miles (e.g., "2.5 miles")
6. **Icon** - A relevant emoji that represents the activity type (e.g., 🎨 for art, 🎭 for theater, ⚽ for sports, 🍴 for food events)

**Important Guidelines:**
- Only include activities that are actually happening (check dates carefully)
- Prioritize activities within the specified distance range
- Consider the children's ages when selecting appropriate activities
- If additional preferences are provided, weight those heavily in your recommendations
- Ensure variety in the types of activities recommended
- Include both indoor and outdoor options when available

**Output Format:**
Return your response as a JSON array with exactly 5 activities in this structure:

%s
[
  {
    "name": "Activity Name",
    "time": "Day, Date, Time Range",
    "description": "Engaging description of the activity and why it's great for families with kids of the specified ages.",
    "location": "Venue Name, Address",
    "distance": "X.X miles",
    "icon": "🎨"
  }
]
%s

Ensure the JSON is valid and can be parsed directly. Do not include any text before or after the JSON array.`

// BuildPrompt renders the search criteria into the instruction sent upstream.
// It is a pure function: identical criteria produce an identical string.
func BuildPrompt(c dto.SearchCriteria) string {
	prefs := c.OptionalPreferences
	if prefs == "" {
		prefs = "None specified"
	}
	return fmt.Sprintf(promptFormat,
		c.City, c.KidAges, c.Availability, c.MaxDistance, c.City, prefs,
		c.City, "```json", "```")
}
