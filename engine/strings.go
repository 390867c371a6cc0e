package engine

import (
	"strings"
	"unicode/utf8"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/value"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// registerStrings installs the string: word family. Case
// folding goes through golang.org/x/text/cases rather than strings.ToUpper
// / strings.ToLower so multi-rune and locale-sensitive folding behaves the
// way the rest of the ecosystem does it.
func registerStrings(c *Context) {
	c.def("string:length", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(utf8.RuneCountInString(s)))))
		return nil
	})

	c.def("string:starts-with?", func(e value.Engine) error {
		prefix, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(strings.HasPrefix(s, prefix)))
		return nil
	})
	c.def("string:ends-with?", func(e value.Engine) error {
		suffix, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(strings.HasSuffix(s, suffix)))
		return nil
	})
	c.def("string:includes?", func(e value.Engine) error {
		needle, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(strings.Contains(s, needle)))
		return nil
	})
	c.def("string:index-of", func(e value.Engine) error {
		needle, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(runeIndex(s, strings.Index(s, needle))))))
		return nil
	})
	c.def("string:last-index-of", func(e value.Engine) error {
		needle, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(runeIndex(s, strings.LastIndex(s, needle))))))
		return nil
	})

	c.def("string:reverse", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		e.Push(value.NewString(string(runes)))
		return nil
	})

	c.def("string:lower-case", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(cases.Lower(language.Und).String(s)))
		return nil
	})
	c.def("string:upper-case", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(cases.Upper(language.Und).String(s)))
		return nil
	})
	c.def("string:swap-case", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(swapCase(s)))
		return nil
	})

	c.def("string:trim", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(strings.TrimSpace(s)))
		return nil
	})
	c.def("string:trim-start", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(strings.TrimLeft(s, " \t\n\r\f\v")))
		return nil
	})
	c.def("string:trim-end", func(e value.Engine) error {
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(strings.TrimRight(s, " \t\n\r\f\v")))
		return nil
	})

	// string:substring takes an inclusive end index: "hello" 1 3 yields
	// "ell".
	c.def("string:substring", func(e value.Engine) error {
		end, err := popLong(e)
		if err != nil {
			return err
		}
		start, err := popLong(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		runes := []rune(s)
		if start < 0 || end < start-1 || end >= int64(len(runes)) {
			return lerr.New(lerr.Range, "substring bounds [%d, %d] out of range for a string of length %d", start, end, len(runes))
		}
		e.Push(value.NewString(string(runes[start : end+1])))
		return nil
	})

	c.def("string:split", func(e value.Engine) error {
		sep, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		var parts []string
		if sep == "" {
			for _, r := range s {
				parts = append(parts, string(r))
			}
		} else {
			parts = strings.Split(s, sep)
		}
		items := make([]value.Value, len(parts))
		for i, p := range parts {
			items[i] = value.NewString(p)
		}
		e.Push(value.NewVector(items))
		return nil
	})

	c.def("string:repeat", func(e value.Engine) error {
		n, err := popLong(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		if n < 0 {
			return lerr.New(lerr.Range, "cannot repeat a string a negative number of times")
		}
		e.Push(value.NewString(strings.Repeat(s, int(n))))
		return nil
	})

	c.def("string:replace", func(e value.Engine) error {
		replacement, err := popString(e)
		if err != nil {
			return err
		}
		target, err := popString(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(strings.Replace(s, target, replacement, 1)))
		return nil
	})

	c.def("string:pad-start", func(e value.Engine) error {
		pad, err := popString(e)
		if err != nil {
			return err
		}
		length, err := popLong(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		padded, err := padTo(s, pad, int(length), true)
		if err != nil {
			return err
		}
		e.Push(value.NewString(padded))
		return nil
	})
	c.def("string:pad-end", func(e value.Engine) error {
		pad, err := popString(e)
		if err != nil {
			return err
		}
		length, err := popLong(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		padded, err := padTo(s, pad, int(length), false)
		if err != nil {
			return err
		}
		e.Push(value.NewString(padded))
		return nil
	})

	c.def("string:@", func(e value.Engine) error {
		idx, err := popLong(e)
		if err != nil {
			return err
		}
		s, err := popString(e)
		if err != nil {
			return err
		}
		runes := []rune(s)
		if idx < 0 || idx >= int64(len(runes)) {
			return lerr.New(lerr.Range, "index %d out of range for a string of length %d", idx, len(runes))
		}
		e.Push(value.NewString(string(runes[idx])))
		return nil
	})
}

// runeIndex converts a byte offset from strings.Index/LastIndex into a
// rune offset, preserving the -1 not-found sentinel.
func runeIndex(s string, byteIdx int) int {
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:byteIdx])
}

func swapCase(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case 'a' <= r && r <= 'z':
			runes[i] = r - ('a' - 'A')
		case 'A' <= r && r <= 'Z':
			runes[i] = r + ('a' - 'A')
		}
	}
	return string(runes)
}

func padTo(s, pad string, length int, start bool) (string, error) {
	if utf8.RuneCountInString(pad) != 1 {
		return "", lerr.New(lerr.Range, "pad string must be exactly one character")
	}
	have := utf8.RuneCountInString(s)
	if have >= length {
		return s, nil
	}
	fill := strings.Repeat(pad, length-have)
	if start {
		return fill + s, nil
	}
	return s + fill, nil
}
