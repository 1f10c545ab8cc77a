//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"strconv"
	"strings"
)

// Value represents a centipawn score or a mate distance, signed from the
// perspective of the side to move.
type Value int16

// Constants for values.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 15_000
	ValueNA        Value = -ValueInf - 1
	ValueMax       Value = 10_000
	ValueMin       Value = -ValueMax
	ValueCheckMate Value = ValueMax
	// ValueCheckMateThreshold anything with a larger absolute value than
	// this is a mate score rather than a material/positional score.
	ValueCheckMateThreshold = ValueCheckMate - MaxDepth - 1
)

// IsValid checks if value is within the valid range (between Min and Max).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

func absValue(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsCheckMateValue returns true if v encodes a mate-in-N score rather than
// a plain centipawn evaluation.
func (v Value) IsCheckMateValue() bool {
	a := absValue(int(v))
	return a > int(ValueCheckMateThreshold) && a <= int(ValueCheckMate)
}

// String renders the value the way UCI "info score" lines do: "cp <n>" or
// "mate <n>".
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v.IsCheckMateValue():
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - absValue(int(v))
		os.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		os.WriteString("N/A")
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}
