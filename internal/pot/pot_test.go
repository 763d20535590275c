// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wantHeader is the exact block every template must start with. Spelled
// out here so a change to the production constant fails loudly.
const wantHeader = `# SOME DESCRIPTIVE TITLE.
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

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteHeader())
	assert.Equal(t, wantHeader, buf.String())
}

func TestWriteEntry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain string",
			text: "Welcome",
			want: "msgid \"Welcome\"\nmsgstr \"\"\n\n",
		},
		{
			name: "string with spaces and punctuation",
			text: "A modern desktop, option 1.",
			want: "msgid \"A modern desktop, option 1.\"\nmsgstr \"\"\n\n",
		},
		{
			name: "empty string",
			text: "",
			want: "msgid \"\"\nmsgstr \"\"\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(&buf).WriteEntry(tt.text))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestHeaderPrecedesEntries(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEntry("GNOME"))
	require.NoError(t, w.WriteEntry("A desktop"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, wantHeader))
	assert.Equal(t,
		"msgid \"GNOME\"\nmsgstr \"\"\n\nmsgid \"A desktop\"\nmsgstr \"\"\n\n",
		strings.TrimPrefix(out, wantHeader))
}
