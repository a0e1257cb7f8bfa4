// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the FitnessDocument as a single JSON file.

# Loading

Load returns the whole persisted document:

	st := store.Open(cfg.DataFile)
	doc, err := st.Load()

On first run (the file does not exist) Load seeds the default document,
writes it to disk, and returns it. A file that exists but cannot be
parsed is a returned error - corruption is never silently recovered.

# Saving

Save serializes the full document and overwrites the file:

	err := st.Save(doc)

There are no partial writes, no merge with previous content, and no
versioning or backup: the last writer fully wins. Nothing locks the file
between a Load and a later Save, so two racing whole-document saves
interleave only as well as os.WriteFile does. The system assumes a
single trusted operator and does not solve multi-writer consistency.

# Seed Content

DefaultDocument builds the first-run state:

  - profile defaults (height 175, weight 70, fat 15, muscle 40)
  - 16 progress weeks numbered 1..16, all values "0"
  - 16 muscle measurement weeks, all values "0"
  - a five-meal plan for each of the seven weekdays
  - one exercise plan per weekday (rest days included)
  - 6 habit cards
*/
package store
