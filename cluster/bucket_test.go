package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryBucket_Lookup(t *testing.T) {
	req := require.New(t)
	bucket := NewCategoryBucket()

	req.Equal(0, bucket.Lookup("greeting"))
	req.Equal(1, bucket.Lookup("help"))
	req.Equal(2, bucket.Lookup("generate_report"))
	req.Equal(3, bucket.Lookup("delete_contact"))
	req.Equal(4, bucket.Lookup("update_deal"))
	req.Equal(5, bucket.Lookup("create_task"))
	req.Equal(6, bucket.Lookup("error_handling"))

	// Unmapped intents land in the default bucket.
	req.Equal(0, bucket.Lookup("send_email"))
	req.Equal(0, bucket.Lookup("unknown_intent"))
}
