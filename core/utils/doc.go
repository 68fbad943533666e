// Package utils provides small helpers shared across packages: conversion of
// loosely typed JSON values and file name construction for generated reports.
package utils
