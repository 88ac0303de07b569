// Command wizard runs the screening intake flow in the terminal against an
// in-process handoff store. Useful for trying the pipeline without Redis,
// Mongo or a browser; set SCORER_URL to score remotely.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"asdscreen/config"
	"asdscreen/internal/handoff"
	"asdscreen/internal/model"
	"asdscreen/internal/service"
)

var behavioralQuestions = []string{
	"I often notice small sounds when others do not",
	"I usually concentrate more on the whole picture, rather than small details",
	"I find it easy to do more than one thing at once",
	"If there is an interruption, I can switch back to what I was doing very quickly",
	"I find it easy to 'read between the lines' when someone is talking to me",
	"I know how to tell if someone listening to me is getting bored",
	"When I'm reading a story, I find it difficult to work out the characters' intentions",
	"I like to collect information about categories of things",
	"I find it easy to work out what someone is thinking or feeling",
	"I find it difficult to work out people's intentions",
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	store := handoff.NewMemoryStore()
	intakeSvc := service.NewIntakeService(store)
	predictor := service.NewPredictionClient(cfg.ScorerURL)
	resultSvc := service.NewResultService(store, predictor, nil)

	sessionID := intakeSvc.NewSession()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Behavioral Questions (y/n)")
	for {
		answers := make(map[string]string)
		for i, q := range behavioralQuestions {
			field := model.BehavioralFields[i]
			answers[field] = askYesNo(reader, fmt.Sprintf("A%d: %s", i+1, q))
		}
		result, err := intakeSvc.SaveBehavioral(ctx, sessionID, answers)
		if err != nil {
			log.Fatal(err)
		}
		if result.Valid {
			break
		}
		fmt.Println(result.Message)
	}

	fmt.Println("\nPersonal Information")
	for {
		answers := map[string]string{
			"age":                  ask(reader, "Age"),
			"gender":               ask(reader, "Gender (m/f)"),
			"ethnicity":            ask(reader, "Ethnicity"),
			"jaundice":             ask(reader, "Born with jaundice? (yes/no)"),
			"autism":               ask(reader, "Family member with autism? (yes/no)"),
			"country_of_residence": ask(reader, "Country of residence"),
			"used_app_before":      ask(reader, "Used this app before? (yes/no)"),
			"relation":             ask(reader, "Relation to subject (self/parent/...)"),
		}
		result, err := intakeSvc.SavePersonal(ctx, sessionID, answers)
		if err != nil {
			log.Fatal(err)
		}
		if result.Valid {
			break
		}
		fmt.Println(result.Message)
	}

	fmt.Println("\nFetching prediction...")
	outcome, err := resultSvc.Run(ctx, sessionID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outcome.Display())
}

func ask(reader *bufio.Reader, prompt string) string {
	fmt.Printf("%s: ", prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func askYesNo(reader *bufio.Reader, prompt string) string {
	for {
		switch strings.ToLower(ask(reader, prompt)) {
		case "y", "yes", "1":
			return "1"
		case "n", "no", "0":
			return "0"
		}
		fmt.Println("Please answer y or n.")
	}
}
