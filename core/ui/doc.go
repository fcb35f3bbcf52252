// Package ui renders command output: aligned tables and colored status badges.
// Colors are dropped when NO_COLOR is set.
package ui
