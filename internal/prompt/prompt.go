// Package prompt assembles the instruction strings sent to the generation service.
// Builders are pure and never truncate the user content.
package prompt

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for test-plan scheduling anchors.
const DateLayout = "2006-01-02"

// Summarize asks for a very short Turkish summary of a note.
func Summarize(content string) string {
	return "Bu metni çok kısa Türkçe özetle: " + content
}

// Translate asks for text to be translated into targetLanguage.
func Translate(text, targetLanguage string) string {
	return fmt.Sprintf("Bu metni %s diline çevir: %s", targetLanguage, text)
}

// QuizQuestions is the number of questions requested by Quiz.
const QuizQuestions = 5

// Quiz asks for a five-question multiple-choice quiz in markdown: each
// question starts with "Soru {n}:", options A) to D) sit on their own lines and
// a trailing "Doğru Cevap:" line names the correct option.
func Quiz(content string) string {
	var b strings.Builder
	b.WriteString("Aşağıdaki ders notu içeriğine dayalı olarak bir quiz oluştur. ")
	b.WriteString("Oluşturduğun Quiz 'Türkçe' olsun.\n")
	fmt.Fprintf(&b, "Oluşturduğun Quiz %d soru olsun. ", QuizQuestions)
	b.WriteString("Her soru için 4 seçenek ve doğru cevabı belirt.\n")
	b.WriteString("Lütfen quiz çıktısını markdown formatında oluştur; her soruyu 'Soru {n}: Aşağıdakilerden hangisi doğrudur? veya xxx nedir?' şeklinde başlat, ")
	b.WriteString("seçenekleri alt alta sıralı (her biri yeni satırda olacak şekilde) listele ve en altta 'Doğru Cevap:' kısmında doğru seçeneği belirt. ")
	b.WriteString("Seçenekleri A), B), C), D) şeklinde yaz.\n")
	b.WriteString("Ders Notu: ")
	b.WriteString(content)
	return b.String()
}

// TestPlan asks for an ISTQB test-planning schedule as a JSON array of task
// objects. All dates are anchored on today; the document follows verbatim.
func TestPlan(content string, today time.Time) string {
	day := today.Format(DateLayout)
	ex := exampleDates(today)
	return strings.NewReplacer(
		"{today}", day,
		"{e1}", ex[0], "{s2}", ex[1], "{e2}", ex[2],
		"{s3}", ex[3], "{e3}", ex[4], "{s4}", ex[5], "{e4}", ex[6],
	).Replace(testPlanTemplate) + "\n\nDocument Content:\n" + content
}

// exampleDates lays out four consecutive five-day tasks starting today.
func exampleDates(today time.Time) [7]string {
	d := func(days int) string { return today.AddDate(0, 0, days).Format(DateLayout) }
	return [7]string{d(4), d(5), d(9), d(10), d(14), d(15), d(19)}
}

const testPlanTemplate = `
Analyze the following document as an ISTQB expert and use the information provided to generate a comprehensive test planning schedule that adheres strictly to ISTQB standards. Your objective is to produce a detailed test planning document, optimized for creating a Gantt chart. Your analysis should cover all aspects of test planning, including test strategy, resource estimation, scheduling, risk management, and environment/tool requirements. You must focus solely on constructing the test planning schedule, without incorporating the content of the input document verbatim.

When generating dates in your output, use the current date "{today}" as the starting point for scheduling. All planned dates should be calculated relative to today's date.

Your output must be a valid JSON array where each object represents a task in the test planning process. Each object must contain exactly the following keys:
- "Task Name": A concise title for the task.
- "Description": A detailed explanation of the task, including all necessary ISTQB-standard test planning elements.
- "Start Date": The planned start date for the task in the format YYYY-MM-DD.
- "End Date": The planned end date for the task in the format YYYY-MM-DD.
- "Duration (days)": The total number of days allocated for the task.

Below is an example JSON structure to follow:

[
    {
        "Task Name": "Test Strategy Definition",
        "Description": "Define the overall testing strategy, including objectives, scope (in-scope and out-of-scope items), success criteria, and exit conditions, based on ISTQB standards.",
        "Start Date": "{today}",
        "End Date": "{e1}",
        "Duration (days)": 5
    },
    {
        "Task Name": "Resource Estimation and Scheduling",
        "Description": "Estimate the required testing resources and develop a realistic schedule that aligns with project deadlines following ISTQB best practices.",
        "Start Date": "{s2}",
        "End Date": "{e2}",
        "Duration (days)": 5
    },
    {
        "Task Name": "Risk Assessment and Mitigation Planning",
        "Description": "Identify potential risks related to security, performance, and usability. Develop mitigation strategies and contingency plans in line with ISTQB standards.",
        "Start Date": "{s3}",
        "End Date": "{e3}",
        "Duration (days)": 5
    },
    {
        "Task Name": "Test Environment and Tool Setup",
        "Description": "Define and set up the test environment, including hardware, software, network configurations, and necessary test tools, ensuring full compliance with ISTQB guidelines.",
        "Start Date": "{s4}",
        "End Date": "{e4}",
        "Duration (days)": 5
    }
]

*Additional Instructions:*
- Ensure that the output JSON array is directly convertible into an XLSX spreadsheet, where each key represents a column header.
- Do not include any extra keys or unstructured text outside of the JSON array.
- Your analysis must reflect the expertise of an ISTQB expert and provide a comprehensive test planning schedule that aligns with ISTQB standards.
- Instead of processing a test planning document, use the content provided (which may be from other types of documents) to generate a test planning schedule.
- The output should be detailed and cover all essential aspects of the test planning process without including any feedback or recommendations.
- Use the current date "{today}" as a reference point for all scheduled dates in the generated output.
    `
