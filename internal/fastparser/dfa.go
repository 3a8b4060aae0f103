// Package fastparser DFA implementation
//
// This file implements a table-driven DFA (Deterministic Finite Automaton)
// for the default configuration ("," and "\n") as an alternative to the
// branch-based scanner in parser.go. Table lookups add an indirection per
// byte, so expect it to trail Parse; it is kept as an independent
// implementation to compare against.
package fastparser

import (
	"strconv"

	"github.com/shapestone/csvgrammar/internal/grammar"
)

// charClass represents character classes for DFA state machine
type charClass uint8

const (
	classQuote charClass = iota // "
	classComma                  // ,
	classLF                     // \n
	classOther                  // everything else, including \r
	numCharClasses
)

// dfaState represents states in the DFA
type dfaState uint8

const (
	stateStart dfaState = iota
	stateInUnquotedField
	stateInQuotedField
	stateAfterQuote
	stateError
	numStates
)

// dfaAction represents actions to perform during state transitions
type dfaAction uint8

const (
	actionNone         dfaAction = iota
	actionAddChar                // Add character to current field
	actionEndField               // End current field
	actionEndRecord              // End current field and record
	actionEscapedQuote           // Add escaped quote to field
	actionOpenQuote              // Remember where a quoted field opened
	actionError                  // Error condition
)

// transition represents a state transition in the DFA
type transition struct {
	nextState dfaState
	action    dfaAction
}

// charClassTable is a 256-entry lookup table for character classification
var charClassTable [256]charClass

// dfaTransitions is the DFA state transition table
// [currentState][charClass] -> (nextState, action)
var dfaTransitions [numStates][numCharClasses]transition

func init() {
	initCharClassTable()
	initDFATransitions()
}

// initCharClassTable initializes the character classification lookup table
func initCharClassTable() {
	for i := 0; i < 256; i++ {
		charClassTable[i] = classOther
	}
	charClassTable['"'] = classQuote
	charClassTable[','] = classComma
	charClassTable['\n'] = classLF
}

// initDFATransitions initializes the DFA state transition table
func initDFATransitions() {
	// stateStart: beginning of a field
	dfaTransitions[stateStart][classQuote] = transition{stateInQuotedField, actionOpenQuote}
	dfaTransitions[stateStart][classComma] = transition{stateStart, actionEndField}
	dfaTransitions[stateStart][classLF] = transition{stateStart, actionEndRecord}
	dfaTransitions[stateStart][classOther] = transition{stateInUnquotedField, actionAddChar}

	// stateInUnquotedField: quotes are ordinary content
	dfaTransitions[stateInUnquotedField][classQuote] = transition{stateInUnquotedField, actionAddChar}
	dfaTransitions[stateInUnquotedField][classComma] = transition{stateStart, actionEndField}
	dfaTransitions[stateInUnquotedField][classLF] = transition{stateStart, actionEndRecord}
	dfaTransitions[stateInUnquotedField][classOther] = transition{stateInUnquotedField, actionAddChar}

	// stateInQuotedField: everything but a quote is content
	dfaTransitions[stateInQuotedField][classQuote] = transition{stateAfterQuote, actionNone}
	dfaTransitions[stateInQuotedField][classComma] = transition{stateInQuotedField, actionAddChar}
	dfaTransitions[stateInQuotedField][classLF] = transition{stateInQuotedField, actionAddChar}
	dfaTransitions[stateInQuotedField][classOther] = transition{stateInQuotedField, actionAddChar}

	// stateAfterQuote: just read a quote inside a quoted field
	dfaTransitions[stateAfterQuote][classQuote] = transition{stateInQuotedField, actionEscapedQuote}
	dfaTransitions[stateAfterQuote][classComma] = transition{stateStart, actionEndField}
	dfaTransitions[stateAfterQuote][classLF] = transition{stateStart, actionEndRecord}
	dfaTransitions[stateAfterQuote][classOther] = transition{stateError, actionError}

	for c := charClass(0); c < numCharClasses; c++ {
		dfaTransitions[stateError][c] = transition{stateError, actionError}
	}
}

// ParseDFA parses CSV data with "," and "\n" using the transition tables.
func ParseDFA(data []byte) ([][]string, error) {
	if len(data) == 0 {
		return [][]string{}, nil
	}

	records := make([][]string, 0, 16)
	currentRecord := getFieldSlice()
	var currentField []byte
	quoteOpen := 0

	state := stateStart
	// inRecord is false only between a line break and the next byte
	inRecord := true

	saveField := func() {
		currentRecord = append(currentRecord, string(currentField))
		currentField = currentField[:0]
	}

	saveRecord := func() {
		record := make([]string, len(currentRecord))
		copy(record, currentRecord)
		records = append(records, record)
		currentRecord = currentRecord[:0]
	}

	for pos, char := range data {
		inRecord = true
		trans := dfaTransitions[state][charClassTable[char]]

		switch trans.action {
		case actionAddChar:
			currentField = append(currentField, char)
		case actionEscapedQuote:
			currentField = append(currentField, '"')
		case actionOpenQuote:
			quoteOpen = pos
		case actionEndField:
			saveField()
		case actionEndRecord:
			saveField()
			saveRecord()
			inRecord = false
		case actionError:
			putFieldSlice(currentRecord)
			return nil, &grammar.Error{
				Offset:   pos,
				Expected: strconv.QuoteRune(',') + " or line break or end of input",
				Err:      grammar.ErrTrailingInput,
			}
		}

		state = trans.nextState
	}

	if state == stateInQuotedField {
		putFieldSlice(currentRecord)
		return nil, unterminated(quoteOpen)
	}

	if inRecord {
		saveField()
		saveRecord()
	}
	putFieldSlice(currentRecord)

	return records, nil
}
