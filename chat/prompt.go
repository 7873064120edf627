package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-floodlens/types"
)

// buildSystemInstruction assembles the extraction prompt: the field
// vocabulary, the mapping guidelines, and the recent conversation window as
// JSON context.
func buildSystemInstruction(window []types.Turn) string {
	fields := strings.Join(types.SchemaFields, ", ")

	historyJSON, err := json.Marshal(window)
	if err != nil {
		historyJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are an AI assistant analyzing flood and landslide data from a CSV file for Assam, India.
Your ONLY task is to interpret the user's query and generate a JSON object representing the filter criteria based on the available data fields.
Available data fields: %s.

Guidelines:
1. Analyze the user's query and the recent conversation history.
2. Identify relevant filtering conditions (district, year, month, severity, risk levels, rainfall ranges, etc.).
3. Map user terms to data fields:
    - "High/Severe flood" or "major flood" likely maps to "FloodSeverity": "High" or "FloodSeverity": "Severe". If unsure between High/Severe, you can include both in an array like "FloodSeverity": ["High", "Severe"] or just pick "Severe".
    - "High landslide risk" maps to "LandslideRisk": "High".
    - "High flood risk forecast" maps to "FloodRiskForecast": "High".
    - Month names (e.g., "July", "aug") MUST be converted to numbers (1-12), like "Month": "7" or "Month": "8".
    - Specific locations might map to "LocationName" or "District". Prefer "District" if mentioned generally.
    - Rainfall conditions (e.g., "rainfall above 500mm") should be extracted as the number plus the relation, like "MonthlyRainfall_mm": "500" and "RainfallCondition": "above". The comparison logic is handled later.
    - Extract the Year if mentioned (e.g., "Year": "2023").
4. Output FORMAT: Respond ONLY with a single JSON object containing the extracted criteria.
    - Example Query: "show severe floods in Sivasagar during July 2023" -> Expected JSON Output: {"District": "Sivasagar", "FloodSeverity": "Severe", "Year": "2023", "Month": "7"}
    - Example Query: "high landslide risk in Dima Hasao" -> Expected JSON Output: {"District": "Dima Hasao", "LandslideRisk": "High"}
    - Example Query: "rainfall above 500 mm in 2022" -> Expected JSON Output: {"Year": "2022", "MonthlyRainfall_mm": "500", "RainfallCondition": "above"}
5. If the query is too vague, unclear, or you cannot confidently extract filters, output an empty JSON object: {}.
6. DO NOT add any conversational text, greetings, explanations, or markdown formatting (like %s) around the JSON output. Just the raw JSON object.

Current Conversation History (for context):
%s`, fields, "```json", historyJSON)
}
