// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Admin is the predicate function for admin builders.
type Admin func(*sql.Selector)

// AdminSession is the predicate function for adminsession builders.
type AdminSession func(*sql.Selector)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// AssessmentLevel is the predicate function for assessmentlevel builders.
type AssessmentLevel func(*sql.Selector)

// BranchRule is the predicate function for branchrule builders.
type BranchRule func(*sql.Selector)

// Dimension is the predicate function for dimension builders.
type Dimension func(*sql.Selector)

// DimensionScore is the predicate function for dimensionscore builders.
type DimensionScore func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Questionnaire is the predicate function for questionnaire builders.
type Questionnaire func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// SurveyOption is the predicate function for surveyoption builders.
type SurveyOption func(*sql.Selector)
