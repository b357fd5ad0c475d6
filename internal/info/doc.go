// Package info builds the dataset report printed by "ycbvideo info": which
// sequences are present, which expected ones are missing, and how many
// complete and incomplete frames each sequence holds.
package info
