package fileops

import "github.com/jmgilman/fallible/fault"

func init() {
	for _, d := range []fault.Descriptor{
		{Kind: KindDirectoryAlreadyExists, Summary: "target path is already occupied", Retryable: false},
		{Kind: KindNotFound, Summary: "requested path does not exist", Retryable: false},
		{Kind: KindValidationFailure, Summary: "payload failed validation", Retryable: false},
	} {
		if err := fault.Register(d); err != nil {
			panic(err)
		}
	}
}
