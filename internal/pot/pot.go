// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pot emits gettext Portable Object Template output: one fixed
// header block followed by msgid/msgstr entry pairs with empty translations.
package pot

import (
	"fmt"
	"io"
)

// header is the template metadata block written once before any entry.
// The creation date is a fixed literal so repeated runs on an unchanged
// config produce byte-identical output.
const header = `# SOME DESCRIPTIVE TITLE.
# Copyright (C) YEAR THE PACKAGE'S COPYRIGHT HOLDER
# This file is distributed under the same license as the os-installer package.
# FIRST AUTHOR <EMAIL@ADDRESS>, YEAR.
#
msgid ""
msgstr ""
"Project-Id-Version: os-installer-config\n"
"Report-Msgid-Bugs-To: \n"
"POT-Creation-Date: 2023-08-18 03:39+0100\n"
"PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE\n"
"Last-Translator: FULL NAME <EMAIL@ADDRESS>\n"
"Language-Team: LANGUAGE <LL@li.org>\n"
"Language: \n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"

`

// Writer writes template entries to a single underlying stream in the
// order they are given. It never reorders or deduplicates.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader emits the fixed header block. Call it exactly once, before
// any entries.
func (w *Writer) WriteHeader() error {
	if _, err := io.WriteString(w.w, header); err != nil {
		return fmt.Errorf("writing template header: %w", err)
	}
	return nil
}

// WriteEntry emits one source string as an empty-translation entry: a
// quoted msgid line, an empty msgstr line, and a blank separator. Embedded
// double quotes or newlines are not escaped and will corrupt the template;
// installer configs do not contain them.
func (w *Writer) WriteEntry(text string) error {
	if _, err := fmt.Fprintf(w.w, "msgid \"%s\"\nmsgstr \"\"\n\n", text); err != nil {
		return fmt.Errorf("writing template entry: %w", err)
	}
	return nil
}
