package platform

const getMeQuery = `query GetMe {
  me {
    id
    importId
    educationPeriod
    subjects {
      id
      name
    }
  }
}`

const courseOutlineQuery = `query CourseOutline($subjectId: ID!, $educationPeriod: String!, $filter: CourseOutlineFilter) {
  courseOutline(subjectId: $subjectId, educationPeriod: $educationPeriod, filter: $filter) {
    units {
      name
      title
      subunits {
        resources {
          __typename
          ... on EmbeddedVideo {
            videoId
            displayName
          }
        }
      }
    }
  }
}`

// videoProgress returns its record as a JSON string, not an object.
const videoProgressQuery = `query videoProgress($userId: Int!, $videoId: Int!) {
  videoProgress(userId: $userId, videoId: $videoId)
}`

const storeDailyVideoProgressMutation = `mutation storeDailyVideoProgress($userId: Int!, $videoId: Int!, $status: String!, $cbPersonId: String!, $progress: String!, $watchedPercentage: String!, $playTimePercentage: String!) {
  storeDailyVideoProgress(userId: $userId, videoId: $videoId, status: $status, cbPersonId: $cbPersonId, progress: $progress, watchedPercentage: $watchedPercentage, playTimePercentage: $playTimePercentage) {
    ok
  }
}`
