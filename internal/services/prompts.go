package services

import (
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
)

const itinerarySystemPrompt = "You are an expert itinerary planning assistant that creates personalized travel plans." +
	" Generate a JSON response matching this exact schema:" +
	" {destination: str, daily_itinerary: [{day: int, activities: [{name: str, duration: float, notes: str, activity_type: str, cost: int}], day_total_hours: float, day_total_cost: int}], total_cost: int}." +
	" CRITICAL REQUIREMENTS:" +
	" 1) DESTINATION FOCUS: You MUST create activities for the EXACT destination provided in the user's request. If the user specifies 'Tokyo', create Tokyo activities. If 'Paris', create Paris activities. NEVER use a different city than what the user specified." +
	" 2) DURATION RESPECT: Plan EXACTLY the number of days requested. If user requests 3 days, create 3 days. Each day should have 6-13 hours of activities (day trips can be 12+ hours)." +
	" 3) BUDGET COMPLIANCE: Total cost MUST be <= budget. Choose cost-effective options when budget is tight. Include free activities when possible." +
	" 4) PREFERENCE PRIORITIZATION: Heavily favor activities matching user's top preferences (rank 1-2), moderately include rank 3, sparingly use ranks 4-5." +
	" 5) PROXIMITY GROUPING: Group nearby activities together to minimize travel time. Start each day from popular tourist areas or central neighborhoods." +
	" 6) REALISTIC DURATIONS: Use 0.5-4 hours for regular activities, 8-12 hours for day trips. Include travel time between locations." +
	" 7) AUTHENTIC EXPERIENCES: Include must-see attractions, local cuisine, cultural sites, and hidden gems specific to the destination." +
	" 8) DAILY BALANCE: Each day should have 1-4 activities with a good mix of activity types based on user preferences." +
	" Activity Types (use EXACTLY these values - no other types allowed):" +
	" - Food: Local restaurants, food tours, cooking classes, markets, street food, traditional cuisine" +
	" - Cultural: Museums, galleries, historical sites, temples, churches, cultural performances, local customs" +
	" - Tour: City tours, walking tours, boat tours, landmark visits, guided experiences, sightseeing" +
	" - Recreational: Parks, gardens, beaches, shopping districts, entertainment venues, leisure activities" +
	" - Adventure: Outdoor activities, hiking, water sports, extreme sports, nature excursions, adrenaline activities" +
	" NEVER use 'Entertainment' or any other activity type. Only use: Food, Cultural, Tour, Recreational, Adventure." +
	" IMPORTANT: Always use the destination, duration, budget, and preferences provided in the user's request. Do not make assumptions or use default destinations."

const replacementSystemPrompt = "You are an expert itinerary planning assistant that creates personalized travel plans." +
	` You MUST respond with a JSON object in this EXACT format:
{
  "replacement_activities": [
    {"name": "Activity Name", "duration": 2.5, "cost": 30.0, "notes": "Detailed description of the activity", "activity_type": "Cultural"},
    {"name": "Another Activity", "duration": 1.5, "cost": 25.0, "notes": "Another detailed description", "activity_type": "Food"},
    {"name": "Third Activity", "duration": 3.0, "cost": 40.0, "notes": "Third detailed description", "activity_type": "Tour"}
  ]
}` +
	" CRITICAL REQUIREMENTS:" +
	" 1) DESTINATION FOCUS: You MUST create activities for the EXACT destination provided in the user's request. NEVER use a different city than what the user specified." +
	" 2) UNIQUENESS: The activities generated should be unique from the list of excluded activities" +
	" 3) Activity generated should be within the budget of the user" +
	" 4) The activities generated should be within the day duration of the user" +
	" 5) You should generate EXACTLY 3 activities" +
	" 6) IMPORTANT: Each activity MUST have ALL required fields: name (string), duration (number), cost (number), notes (string), and activity_type (string)" +
	" 7) Provide meaningful notes/descriptions for each activity" +
	" 8) Activity types should be one of: Cultural, Food, Tour, Recreational, Adventure" +
	" 9) Use ONLY the field names shown in the example above - do not use 'category' or any other field names"

var rankLabels = []string{"1st", "2nd", "3rd", "4th", "5th"}

func buildItineraryPrompt(req request_models.UserRequest) string {
	var b strings.Builder
	b.WriteString("Create an itinerary for the following trip:\n\n")
	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Budget: $%d\n", req.Budget)
	fmt.Fprintf(&b, "Duration: %d days\n", req.Days)
	b.WriteString("Activity Preferences (1=most preferred, 5=least preferred):\n")
	for i, label := range rankLabels {
		fmt.Fprintf(&b, "- %s choice: %s\n", label, req.Preference(i+1))
	}
	fmt.Fprintf(&b, "\nPlease create a detailed itinerary for %s for %d days within a budget of $%d.\n",
		req.Destination, req.Days, req.Budget)
	return b.String()
}

func buildReplacementPrompt(req request_models.ModifyActivityRequest) string {
	excluded := make([]string, 0, len(req.ExcludedActivities))
	for _, name := range req.ExcludedNames() {
		excluded = append(excluded, fmt.Sprintf("%q", name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Swap the activity %s for an activity in the itinerary for the destination %s. ", req.Request.Name, req.Destination)
	fmt.Fprintf(&b, "The excluded activities are [%s]. ", strings.Join(excluded, ", "))
	b.WriteString("The activities generated should be unique from the list of excluded activities.\n")
	fmt.Fprintf(&b, "The budget of the user is %d. The day duration is %g hours.\n", req.Budget, req.DayDuration)
	b.WriteString("You should generate EXACTLY 3 activities.\n")
	return b.String()
}
