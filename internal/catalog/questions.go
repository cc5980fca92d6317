package catalog

import (
	"fmt"

	"codequest/internal/models"
)

// lessonQuestions returns the two-question quiz for a lesson topic. Topics
// without a dedicated bank fall back to a generic pair so no scorable level
// ever ships with zero questions.
func lessonQuestions(topic string) []models.Question {
	if bank, ok := lessonBanks[topic]; ok {
		return bank
	}
	return []models.Question{
		{
			Text:        fmt.Sprintf("What is the main purpose of %s?", topic),
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"To complicate code", "To solve problems efficiently", "To slow execution", "To confuse developers"},
			Correct:     1,
			Explanation: fmt.Sprintf("%s helps solve programming problems efficiently.", topic),
		},
		{
			Text:        fmt.Sprintf("Where would you apply %s in practice?", topic),
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Only in toy programs", "Never in production", "In real services and tools", "Only in tests"},
			Correct:     2,
			Explanation: fmt.Sprintf("%s shows up throughout real-world Go code.", topic),
		},
	}
}

var lessonBanks = map[string][]models.Question{
	"Go Basics": {
		{
			Text:        "What is the correct way to print a line in Go?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"echo(\"hi\")", "printf(\"hi\")", "fmt.Println(\"hi\")", "console.log(\"hi\")"},
			Correct:     2,
			Explanation: "fmt.Println writes its arguments followed by a newline.",
		},
		{
			Text:        "Which of these is a valid Go identifier?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"2name", "user-name", "userName", "user name"},
			Correct:     2,
			Explanation: "Identifiers cannot start with a digit, contain hyphens or spaces.",
		},
	},
	"Variables & Types": {
		{
			Text:        "What type does the literal 3.14 have by default?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"int", "float64", "float32", "string"},
			Correct:     1,
			Explanation: "Untyped floating-point constants default to float64.",
		},
		{
			Text:        "Which declaration infers the variable's type?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"var x int = 1", "x := 1", "int x = 1", "let x = 1"},
			Correct:     1,
			Explanation: "The short declaration := infers the type from the right-hand side.",
		},
	},
	"Strings & Runes": {
		{
			Text:        "What does len(\"héllo\") count?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Runes", "Bytes", "Words", "Grapheme clusters"},
			Correct:     1,
			Explanation: "len on a string counts bytes; use utf8.RuneCountInString for runes.",
		},
		{
			Text:        "How do you build a formatted string without printing it?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"fmt.Sprintf", "fmt.Printf", "strings.Print", "string.Format"},
			Correct:     0,
			Explanation: "fmt.Sprintf formats and returns the string.",
		},
	},
	"Control Flow": {
		{
			Text:        "Which operator checks equality in Go?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"=", "==", "===", "is"},
			Correct:     1,
			Explanation: "== compares values; = is assignment.",
		},
		{
			Text:        "What does the && operator return?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"True if either side is true", "True only if both sides are true", "Always false", "Always true"},
			Correct:     1,
			Explanation: "&& is logical AND with short-circuit evaluation.",
		},
	},
	"Loops & Iteration": {
		{
			Text:        "What values does `for i := range 5` yield?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"1 through 5", "0 through 4", "0 through 5", "1 through 4"},
			Correct:     1,
			Explanation: "Ranging over an integer yields 0 up to but not including it.",
		},
		{
			Text:        "What does break do inside a loop?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Pauses the loop", "Skips the current iteration", "Exits the loop completely", "Restarts the loop"},
			Correct:     2,
			Explanation: "break exits the innermost loop immediately.",
		},
	},
	"Functions & Scope": {
		{
			Text:        "How do you define a function in Go?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"function greet() {}", "def greet():", "func greet() {}", "fn greet() {}"},
			Correct:     2,
			Explanation: "Functions are declared with the func keyword.",
		},
		{
			Text:        "What happens to named return values that are never assigned?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Compile error", "They hold their zero value", "They are nil pointers", "Runtime panic"},
			Correct:     1,
			Explanation: "Named results start at their zero value like any declared variable.",
		},
	},
	"Slices & Indexing": {
		{
			Text:        "How do you access the first element of a slice s?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"s[1]", "s[0]", "s.first()", "s.get(0)"},
			Correct:     1,
			Explanation: "Go uses zero-based indexing.",
		},
		{
			Text:        "What does append(s, v) return?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Nothing", "The new length", "A slice containing the added element", "An error"},
			Correct:     2,
			Explanation: "append returns the updated slice, which may point at a new array.",
		},
	},
	"Maps & Sets": {
		{
			Text:        "What does m[k] return for a missing key?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"nil always", "The value type's zero value", "A panic", "An error"},
			Correct:     1,
			Explanation: "Lookups on missing keys yield the zero value; use the comma-ok form to distinguish.",
		},
		{
			Text:        "How do you delete key k from map m?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"m.remove(k)", "delete(m, k)", "m[k] = nil", "del m[k]"},
			Correct:     1,
			Explanation: "The builtin delete removes a key from a map.",
		},
	},
	"Errors & Debugging": {
		{
			Text:        "What is the idiomatic way to report a failure from a function?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"panic", "Return an error value", "Set a global flag", "Log and continue"},
			Correct:     1,
			Explanation: "Functions return error as the last result; callers check it explicitly.",
		},
		{
			Text:        "What does errors.Is check?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Error message equality", "Whether an error wraps a target error", "Whether an error is nil", "Error type names"},
			Correct:     1,
			Explanation: "errors.Is walks the wrap chain looking for a match.",
		},
	},
	"Goroutines & Channels": {
		{
			Text:        "How do you start a goroutine?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"go f()", "spawn f()", "async f()", "thread(f)"},
			Correct:     0,
			Explanation: "The go statement runs the call concurrently.",
		},
		{
			Text:        "What happens when you send on an unbuffered channel with no receiver?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"The value is dropped", "The send blocks", "A panic", "The value is queued"},
			Correct:     1,
			Explanation: "Unbuffered sends block until a receiver is ready.",
		},
	},
}

// testQuestions builds the fixed five-question assessment for a test level.
// The first three are shared across all assessments; the last two step up
// with the level's position in the curriculum.
func testQuestions(levelID int, topic string) []models.Question {
	qs := []models.Question{
		{
			Text:        "What does fmt.Printf(\"%T\", 42) print?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"int", "float64", "number", "42"},
			Correct:     0,
			Explanation: "The %T verb prints the operand's type.",
		},
		{
			Text:        "Which of these types is mutable after creation?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"string", "array value passed by copy", "slice", "constant"},
			Correct:     2,
			Explanation: "Slices share backing storage, so element writes are visible through the slice.",
		},
		{
			Text:        "What does this loop print?\n\nfor i := 0; i < 3; i++ {\n\tfmt.Println(i)\n}",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"0 1 2", "1 2 3", "0 1 2 3", "1 2"},
			Correct:     0,
			Explanation: "The loop runs while i < 3, starting at 0.",
		},
	}

	switch {
	case levelID <= 20:
		qs = append(qs,
			models.Question{
				Text:        "Which statement about := is true?",
				Kind:        models.QuestionMultipleChoice,
				Options:     []string{"It works at package scope", "It declares and initializes inside a function", "It only works for ints", "It is deprecated"},
				Correct:     1,
				Explanation: "Short declarations are only valid inside function bodies.",
			},
			models.Question{
				Text:             "Write a function greet that takes a name and returns a greeting string.",
				Kind:             models.QuestionCode,
				Placeholder:      "func greet(name string) string {\n\t// your code here\n}",
				ExpectedConcepts: []string{"func", "greet", "return"},
				Explanation:      "Declare the function with func and return the greeting.",
			},
		)
	case levelID <= 40:
		qs = append(qs,
			models.Question{
				Text:        "What is the difference between a slice and an array?",
				Kind:        models.QuestionMultipleChoice,
				Options:     []string{"Slices have dynamic length, arrays are fixed", "Arrays have dynamic length, slices are fixed", "No difference", "Slices are faster"},
				Correct:     0,
				Explanation: "An array's length is part of its type; slices grow via append.",
			},
			models.Question{
				Text:             "Write a loop that prints the numbers 1 through 5.",
				Kind:             models.QuestionCode,
				Placeholder:      "// write your loop here",
				ExpectedConcepts: []string{"for", "fmt.Println"},
				Explanation:      "A for loop from 1 to 5 with fmt.Println.",
			},
		)
	case levelID <= 60:
		qs = append(qs,
			models.Question{
				Text:        "What does the receiver in a method declaration refer to?",
				Kind:        models.QuestionMultipleChoice,
				Options:     []string{"The package", "The value the method is called on", "It is optional", "The return value"},
				Correct:     1,
				Explanation: "The receiver binds the method to the value it is invoked on.",
			},
			models.Question{
				Text:             "Write a method String on type Point that returns its textual form.",
				Kind:             models.QuestionCode,
				Placeholder:      "func (p Point) String() string {\n\t// your code here\n}",
				ExpectedConcepts: []string{"func", "String", "return"},
				Explanation:      "Implementing String satisfies fmt.Stringer.",
			},
		)
	default:
		qs = append(qs,
			models.Question{
				Text:        "Which construct waits for a set of goroutines to finish?",
				Kind:        models.QuestionMultipleChoice,
				Options:     []string{"sync.WaitGroup", "time.Sleep", "runtime.Gosched", "select {}"},
				Correct:     0,
				Explanation: "WaitGroup counts goroutines and blocks in Wait until they are done.",
			},
			models.Question{
				Text:             "Write a function double that reads ints from a channel and sends their doubles to another.",
				Kind:             models.QuestionCode,
				Placeholder:      "func double(in <-chan int, out chan<- int) {\n\t// your code here\n}",
				ExpectedConcepts: []string{"func", "chan", "range"},
				Explanation:      "Range over the input channel and send transformed values.",
			},
		)
	}

	return qs
}

// challengeQuestions builds the four-question project check for a challenge.
func challengeQuestions(topic string) []models.Question {
	return []models.Question{
		{
			Text:        fmt.Sprintf("Which practice matters most in a production-grade %s project?", topic),
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Clever one-liners", "Explicit error handling", "Global mutable state", "Skipping tests"},
			Correct:     1,
			Explanation: "Go code handles every error explicitly at the call site.",
		},
		{
			Text:        "How should a long-running operation support cancellation?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"Accept a context.Context", "Poll a global bool", "Use panic/recover", "It cannot"},
			Correct:     0,
			Explanation: "Contexts carry deadlines and cancellation across API boundaries.",
		},
		{
			Text:        "Where do unit tests for package foo live?",
			Kind:        models.QuestionMultipleChoice,
			Options:     []string{"In a top-level tests/ directory", "Next to the code in foo/*_test.go", "In main.go", "Go has no test convention"},
			Correct:     1,
			Explanation: "The go tool discovers *_test.go files alongside the package.",
		},
		{
			Text:             fmt.Sprintf("Write a small program demonstrating %s: define a type, a function over it, and handle an error.", topic),
			Kind:             models.QuestionCode,
			Placeholder:      "package main\n\n// your code here",
			ExpectedConcepts: []string{"func", "type", "err"},
			Explanation:      "A complete example needs a type, a function and explicit error handling.",
		},
	}
}
