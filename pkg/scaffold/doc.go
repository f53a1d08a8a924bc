/*
Package scaffold implements the template instantiation engine.

	+-------------+
	|  Template   |
	| (Source)    |
	+------+------+
	       |
	+------+------+
	|  Scaffold   |
	| (Copy+Edit) |
	+------+------+
	       |
	+------+------+
	| Destination |
	| (Project)   |
	+-------------+

🎯 Purpose:
- Materializes a filtered copy of a template tree at a destination
- Rewrites the project manifest to carry the new project's identity
- Surfaces structured, path-identifying errors for the CLI to present

🔄 Flow:
 1. The copy operation walks the allow-listed template entries depth-first,
    skipping anything matched by the exclusion set
 2. The manifest operation reads the template manifest, applies the fixed
    field rewrites and writes the result atomically
 3. Both operations record per-entry outcomes in a shared Report

⚡ Key Responsibilities:
- Segment-aware exclusion matching (via pkg/pathspec)
- Overwrite-only semantics: the destination is never pruned
- Per-entry failure isolation across the allow-list
- Atomic manifest persistence

🤝 Interfaces:
- Operation: a unit of scaffolding work executed by the Runner
- Report: per-entry outcome collection shared across operations

📝 Design Philosophy:
The package never prompts and never prints. Configuration and answers are
passed in by value through Options, so scripted and interactive drivers get
identical behavior and tests stay simple.
*/
package scaffold
