package inquiry

import "fmt"

func getExtractionPrompt(inquiry string) string {
	return fmt.Sprintf(`You are a travel assistant. Extract travel information from the inquiry below.
Parse destinations as a list if multiple cities are mentioned.

Extract the following information from this travel inquiry:
%s

Return as JSON:
{
    "destination_country": "string",
    "destinations": ["string"],
    "duration_days": number,
    "travelers": number,
    "budget": "string",
    "interests": ["string"],
    "travel_dates": "string"
}`, inquiry)
}
